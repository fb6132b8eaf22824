package skill

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/model/portfolio"
	"portfolio-terrace/api/internal/resource"
	"portfolio-terrace/api/internal/testutils"
)

func newService(t *testing.T) *resource.Service[portfolio.Skill] {
	t.Helper()
	db := testutils.SetupTestDB(t)
	return resource.NewService[portfolio.Skill](db, Schema(), asset.NewManager(t.TempDir()))
}

func TestSkill_ProficiencyClamp(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"上界钳制", 150, 100},
		{"下界钳制", -5, 0},
		{"范围内原样", 80, 80},
		{"字符串形式先归一化再钳制", "120", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := svc.Create(map[string]any{
				"name":        "Go",
				"category":    "backend",
				"proficiency": tt.input,
			})
			require.Nil(t, err)
			assert.Equal(t, tt.want, m.Proficiency)
		})
	}

	t.Run("更新时同样钳制", func(t *testing.T) {
		m, err := svc.Create(map[string]any{
			"name":        "PostgreSQL",
			"category":    "database",
			"proficiency": 60,
		})
		require.Nil(t, err)

		updated, err := svc.Update(strconv.Itoa(int(m.ID)), map[string]any{"proficiency": 999})
		require.Nil(t, err)
		assert.Equal(t, 100, updated.Proficiency)
	})
}
