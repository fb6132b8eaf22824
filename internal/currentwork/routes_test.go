package currentwork

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-terrace/api/internal/asset"
	currentworkModel "portfolio-terrace/api/internal/model/currentwork"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/internal/testutils"
	"portfolio-terrace/api/pkg/response"
)

func newService(t *testing.T) *resource.Service[currentworkModel.CurrentWork] {
	t.Helper()
	db := testutils.SetupTestDB(t)
	return resource.NewService[currentworkModel.CurrentWork](db, Schema(), asset.NewManager(t.TempDir()))
}

func TestCurrentWork_ProgressClamp(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(map[string]any{
		"title":       "新版本重构",
		"description": "x",
		"progress":    150,
	})
	require.Nil(t, err)
	// 创建时越界进度被钳制
	assert.Equal(t, 100, created.Progress)

	id := strconv.Itoa(int(created.ID))

	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"上界钳制", 150, 100},
		{"下界钳制", -20, 0},
		{"范围内原样", 42, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := svc.UpdateProgress(id, tt.input)
			require.Nil(t, err)
			assert.Equal(t, tt.want, m.Progress)
		})
	}
}

func TestCurrentWork_StatusEnum(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(map[string]any{
		"title":       "t",
		"description": "d",
		"status":      "abandoned",
	})
	require.NotNil(t, err)
	assert.Equal(t, response.InvalidParameter, err.Code)

	created, err := svc.Create(map[string]any{
		"title":       "t",
		"description": "d",
		"status":      "on-hold",
	})
	require.Nil(t, err)
	assert.Equal(t, "on-hold", created.Status)
}

func TestCurrentWork_LinksRoundTrip(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(map[string]any{
		"title":       "带链接",
		"description": "x",
		"links": []map[string]any{
			{"title": "仓库", "url": "https://example.com/repo"},
		},
		"technologies": []string{"Go", "PostgreSQL"},
	})
	require.Nil(t, err)
	require.Len(t, created.Links, 1)
	assert.Equal(t, "仓库", created.Links[0].Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, created.Technologies)

	// 表单提交的JSON字符串也能解析
	created2, err := svc.Create(map[string]any{
		"title":       "表单链接",
		"description": "x",
		"links":       `[{"title":"演示","url":"https://example.com/demo"}]`,
	})
	require.Nil(t, err)
	require.Len(t, created2.Links, 1)
	assert.Equal(t, "演示", created2.Links[0].Title)
}
