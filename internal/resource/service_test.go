package resource_test

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/model/portfolio"
	"portfolio-terrace/api/internal/project"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/internal/testutils"
	"portfolio-terrace/api/pkg/response"
)

func newProjectService(t *testing.T) (*resource.Service[portfolio.Project], string) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	root := t.TempDir()
	return resource.NewService[portfolio.Project](db, project.Schema(), asset.NewManager(root)), root
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		wantCode response.ResponseCode
	}{
		{
			name: "有效的创建请求",
			payload: map[string]any{
				"title":       "个人网站",
				"description": "基于gin的作品集后端",
			},
			wantCode: response.Success,
		},
		{
			name: "缺少标题",
			payload: map[string]any{
				"description": "没有标题",
			},
			wantCode: response.InvalidParameter,
		},
		{
			name: "标题为空白",
			payload: map[string]any{
				"title":       "   ",
				"description": "空白标题",
			},
			wantCode: response.InvalidParameter,
		},
		{
			name: "布尔字段的字符串形式被归一化",
			payload: map[string]any{
				"title":       "字符串布尔",
				"description": "表单提交",
				"featured":    "true",
				"order":       "5",
			},
			wantCode: response.Success,
		},
		{
			name: "非法布尔值报错",
			payload: map[string]any{
				"title":       "坏布尔",
				"description": "x",
				"featured":    "yes",
			},
			wantCode: response.InvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newProjectService(t)
			m, err := svc.Create(tt.payload)
			if tt.wantCode == response.Success {
				require.Nil(t, err)
				assert.NotZero(t, m.ID)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
		})
	}
}

func TestService_Create_coercesStringFields(t *testing.T) {
	svc, _ := newProjectService(t)

	m, err := svc.Create(map[string]any{
		"title":       "表单项目",
		"description": "x",
		"featured":    "true",
		"order":       "7",
	})
	require.Nil(t, err)
	assert.True(t, m.Featured)
	assert.Equal(t, 7, m.Order)
}

func TestService_Create_activeDefault(t *testing.T) {
	svc, _ := newProjectService(t)

	t.Run("未提交时默认可见", func(t *testing.T) {
		m, err := svc.Create(map[string]any{"title": "默认可见", "description": "x"})
		require.Nil(t, err)
		assert.True(t, m.Active)
	})

	t.Run("显式提交false按false入库", func(t *testing.T) {
		m, err := svc.Create(map[string]any{
			"title":       "创建即隐藏",
			"description": "x",
			"active":      false,
		})
		require.Nil(t, err)
		assert.False(t, m.Active)

		// 重新读取确认落库值
		fresh, gerr := svc.Get(itoa(m.ID))
		require.Nil(t, gerr)
		assert.False(t, fresh.Active)
	})

	t.Run("表单形式的false同样生效", func(t *testing.T) {
		m, err := svc.Create(map[string]any{
			"title":       "表单隐藏",
			"description": "x",
			"active":      "false",
		})
		require.Nil(t, err)
		assert.False(t, m.Active)
	})
}

func TestService_Get_invalidIdentifier(t *testing.T) {
	svc, _ := newProjectService(t)

	// 既不是slug也解析不成数字ID, 按不存在处理
	_, err := svc.Get("abc")
	require.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)
}

func TestService_List(t *testing.T) {
	svc, _ := newProjectService(t)

	mustCreate := func(payload map[string]any) {
		_, err := svc.Create(payload)
		require.Nil(t, err)
	}
	mustCreate(map[string]any{"title": "a", "description": "x", "category": "web"})
	mustCreate(map[string]any{"title": "b", "description": "x", "category": "web", "featured": true})
	mustCreate(map[string]any{"title": "c", "description": "x", "category": "ml"})

	t.Run("无过滤返回全部", func(t *testing.T) {
		items, total, err := svc.List(url.Values{}, nil)
		require.Nil(t, err)
		assert.Len(t, items, 3)
		assert.EqualValues(t, 3, total)
	})

	t.Run("按分类等值过滤", func(t *testing.T) {
		items, _, err := svc.List(url.Values{"category": {"web"}}, nil)
		require.Nil(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("未识别的参数被忽略", func(t *testing.T) {
		items, _, err := svc.List(url.Values{"nonsense": {"42"}}, nil)
		require.Nil(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("白名单外的取值被忽略", func(t *testing.T) {
		items, _, err := svc.List(url.Values{"featured": {"maybe"}}, nil)
		require.Nil(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("布尔过滤", func(t *testing.T) {
		items, _, err := svc.List(url.Values{"featured": {"true"}}, nil)
		require.Nil(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "b", items[0].Title)
	})

	t.Run("置顶排在最前", func(t *testing.T) {
		items, _, err := svc.List(url.Values{}, nil)
		require.Nil(t, err)
		require.NotEmpty(t, items)
		assert.Equal(t, "b", items[0].Title)
	})

	t.Run("零匹配返回空列表", func(t *testing.T) {
		items, _, err := svc.List(url.Values{"category": {"nope"}}, nil)
		require.Nil(t, err)
		assert.NotNil(t, items)
		assert.Len(t, items, 0)
	})
}

func TestService_Update_merge(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(map[string]any{
		"title":       "原标题",
		"description": "原描述",
		"category":    "web",
	})
	require.Nil(t, err)

	updated, err := svc.Update(itoa(created.ID), map[string]any{
		"description": "新描述",
		"featured":    "true",
	})
	require.Nil(t, err)

	// 未提交的字段保留旧值
	assert.Equal(t, "原标题", updated.Title)
	assert.Equal(t, "web", updated.Category)
	assert.Equal(t, "新描述", updated.Description)
	assert.True(t, updated.Featured)
}

func TestService_Update_notFound(t *testing.T) {
	svc, _ := newProjectService(t)
	_, err := svc.Update("9999", map[string]any{"title": "x"})
	require.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)
}

func TestService_Toggle(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(map[string]any{"title": "t", "description": "d"})
	require.Nil(t, err)
	assert.False(t, created.Featured)

	toggled, berr := svc.Toggle(itoa(created.ID), "featured")
	require.Nil(t, berr)
	assert.True(t, toggled.Featured)

	toggled, berr = svc.Toggle(itoa(created.ID), "featured")
	require.Nil(t, berr)
	assert.False(t, toggled.Featured)
}

func TestService_Toggle_notFound(t *testing.T) {
	svc, _ := newProjectService(t)

	_, err := svc.Toggle("9999", "featured")
	require.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)

	// 不会因为切换而产生新记录
	items, _, lerr := svc.List(url.Values{}, nil)
	require.Nil(t, lerr)
	assert.Len(t, items, 0)
}

func TestService_Toggle_unknownFlag(t *testing.T) {
	svc, _ := newProjectService(t)
	created, err := svc.Create(map[string]any{"title": "t", "description": "d"})
	require.Nil(t, err)

	_, berr := svc.Toggle(itoa(created.ID), "published")
	require.NotNil(t, berr)
	assert.Equal(t, response.InvalidParameter, berr.Code)
}

func TestService_ImageLifecycle(t *testing.T) {
	svc, root := newProjectService(t)

	// 创建时绑定第一张图
	touch(t, root, "a.png")
	created, err := svc.Create(map[string]any{
		"title":       "带图项目",
		"description": "x",
		"image":       "/uploads/a.png",
	})
	require.Nil(t, err)
	assert.Equal(t, "/uploads/a.png", created.Image)

	// 换图: 旧文件被释放, 新文件保留
	touch(t, root, "b.png")
	updated, err := svc.Update(itoa(created.ID), map[string]any{
		"image": "/uploads/b.png",
	})
	require.Nil(t, err)
	assert.Equal(t, "/uploads/b.png", updated.Image)

	_, statErr := os.Stat(filepath.Join(root, "a.png"))
	assert.True(t, os.IsNotExist(statErr), "旧图应被删除")
	_, statErr = os.Stat(filepath.Join(root, "b.png"))
	assert.NoError(t, statErr, "新图应保留")

	// 删除记录: 文件一并释放, 再次读取404
	require.Nil(t, svc.Delete(itoa(created.ID)))
	_, statErr = os.Stat(filepath.Join(root, "b.png"))
	assert.True(t, os.IsNotExist(statErr))

	_, gerr := svc.Get(itoa(created.ID))
	require.NotNil(t, gerr)
	assert.Equal(t, response.NotFound, gerr.Code)
}

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}
