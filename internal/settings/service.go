// Package settings 站点设置: 单例记录, 首次读取时自动创建
package settings

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-terrace/api/internal/asset"
	settingsModel "portfolio-terrace/api/internal/model/settings"
	"portfolio-terrace/api/pkg/response"
)

// 客户端可写字段
var updatable = []string{
	"site_name", "tagline", "about", "email",
	"github", "linkedin", "twitter", "resume", "avatar",
}

// 携带文件路径的字段
var fileFields = []string{"resume", "avatar"}

type SettingsService struct {
	db     *gorm.DB
	assets *asset.Manager
}

func NewSettingsService(db *gorm.DB, assets *asset.Manager) *SettingsService {
	return &SettingsService{db: db, assets: assets}
}

// Get 读取设置, 不存在时创建空记录
func (s *SettingsService) Get() (*settingsModel.Settings, *response.BusinessError) {
	var record settingsModel.Settings
	err := s.db.First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.InternalError("读取设置失败", err)
	}

	// 首次访问, 创建单例
	if err := s.db.Create(&record).Error; err != nil {
		return nil, response.InternalError("初始化设置失败", err)
	}
	return &record, nil
}

// Update 合并更新, 文件字段被替换时释放旧文件
func (s *SettingsService) Update(fields map[string]any) (*settingsModel.Settings, *response.BusinessError) {
	record, berr := s.Get()
	if berr != nil {
		return nil, berr
	}

	updates := make(map[string]any, len(fields))
	for _, k := range updatable {
		if v, ok := fields[k]; ok {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		return record, nil
	}

	// 记录被替换的旧文件
	old := map[string]string{
		"resume": record.Resume,
		"avatar": record.Avatar,
	}
	var stale []string
	for _, f := range fileFields {
		if newVal, ok := updates[f].(string); ok && old[f] != "" && old[f] != newVal {
			stale = append(stale, old[f])
		}
	}

	if err := s.db.Model(record).Updates(updates).Error; err != nil {
		return nil, response.InternalError("更新设置失败", err)
	}

	// 落库成功后再释放旧文件
	for _, path := range stale {
		s.assets.Unbind(path)
	}

	var fresh settingsModel.Settings
	if err := s.db.First(&fresh, record.ID).Error; err != nil {
		return nil, response.InternalError("读取设置失败", err)
	}
	return &fresh, nil
}
