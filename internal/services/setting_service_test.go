package services

import (
	"errors"
	"testing"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
)

func newSettingService(t *testing.T) SettingService {
	t.Helper()
	return NewSettingService(repositories.NewGormSettingRepository(newTestDB(t)))
}

func TestSettingUpdateBatch(t *testing.T) {
	svc := newSettingService(t)

	t.Run("空批次报错", func(t *testing.T) {
		if err := svc.UpdateBatch(nil); !errors.Is(err, ErrEmptySettingsBatch) {
			t.Errorf("err = %v, want ErrEmptySettingsBatch", err)
		}
	})

	t.Run("缺key的条目报错", func(t *testing.T) {
		err := svc.UpdateBatch([]models.SettingInput{{Key: "", Value: "x"}})
		if err == nil {
			t.Error("缺 key 的条目应报错")
		}
	})

	t.Run("新key按给定分组创建且缺省为general", func(t *testing.T) {
		err := svc.UpdateBatch([]models.SettingInput{
			{Key: "site_name", Value: "墨云科技"},
			{Key: "seo_title", Value: "首页标题", Group: "seo"},
		})
		if err != nil {
			t.Fatalf("UpdateBatch 返回错误: %v", err)
		}

		grouped, err := svc.GetAllSettings("")
		if err != nil {
			t.Fatalf("GetAllSettings 返回错误: %v", err)
		}
		if grouped["general"]["site_name"] != "墨云科技" {
			t.Errorf("general.site_name = %q, want 墨云科技", grouped["general"]["site_name"])
		}
		if grouped["seo"]["seo_title"] != "首页标题" {
			t.Errorf("seo.seo_title = %q, want 首页标题", grouped["seo"]["seo_title"])
		}
	})

	t.Run("已存在的key只替换value不改分组", func(t *testing.T) {
		// site_name 已在 general 分组，指定其他分组也不迁移
		err := svc.UpdateBatch([]models.SettingInput{
			{Key: "site_name", Value: "新名字", Group: "seo"},
		})
		if err != nil {
			t.Fatalf("UpdateBatch 返回错误: %v", err)
		}
		grouped, err := svc.GetAllSettings("")
		if err != nil {
			t.Fatalf("GetAllSettings 返回错误: %v", err)
		}
		if grouped["general"]["site_name"] != "新名字" {
			t.Errorf("general.site_name = %q, want 新名字", grouped["general"]["site_name"])
		}
		if _, ok := grouped["seo"]["site_name"]; ok {
			t.Error("已存在的 key 不应迁移分组")
		}
	})

	t.Run("重复提交幂等", func(t *testing.T) {
		inputs := []models.SettingInput{{Key: "copyright", Value: "© 2024"}}
		for i := 0; i < 2; i++ {
			if err := svc.UpdateBatch(inputs); err != nil {
				t.Fatalf("第 %d 次 UpdateBatch 返回错误: %v", i+1, err)
			}
		}
		grouped, err := svc.GetAllSettings("general")
		if err != nil {
			t.Fatalf("GetAllSettings 返回错误: %v", err)
		}
		if grouped["general"]["copyright"] != "© 2024" {
			t.Errorf("copyright = %q, want © 2024", grouped["general"]["copyright"])
		}
	})
}

func TestSettingPublicGroups(t *testing.T) {
	svc := newSettingService(t)

	err := svc.UpdateBatch([]models.SettingInput{
		{Key: "site_name", Value: "墨云科技", Group: "general"},
		{Key: "seo_keywords", Value: "AI", Group: "seo"},
		{Key: "smtp_password", Value: "secret", Group: "mail"},
	})
	if err != nil {
		t.Fatalf("UpdateBatch 返回错误: %v", err)
	}

	public, err := svc.GetPublicSettings()
	if err != nil {
		t.Fatalf("GetPublicSettings 返回错误: %v", err)
	}
	if public["site_name"] != "墨云科技" || public["seo_keywords"] != "AI" {
		t.Errorf("公开设置缺少 general/seo 分组条目: %v", public)
	}
	if _, ok := public["smtp_password"]; ok {
		t.Error("非公开分组的设置不应出现在公开接口中")
	}
}

func TestSettingDeleteByKey(t *testing.T) {
	svc := newSettingService(t)

	if err := svc.UpdateBatch([]models.SettingInput{{Key: "tmp", Value: "x"}}); err != nil {
		t.Fatalf("UpdateBatch 返回错误: %v", err)
	}
	if err := svc.DeleteByKey("tmp"); err != nil {
		t.Fatalf("DeleteByKey 返回错误: %v", err)
	}
	if err := svc.DeleteByKey("tmp"); !errors.Is(err, repositories.ErrSettingNotFound) {
		t.Errorf("重复删除 err = %v, want ErrSettingNotFound", err)
	}
}
