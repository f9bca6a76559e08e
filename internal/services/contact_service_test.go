package services

import (
	"errors"
	"testing"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
)

func newContactService(t *testing.T) ContactService {
	t.Helper()
	return NewContactService(repositories.NewGormContactRepository(newTestDB(t)))
}

func validContactInput() models.ContactInput {
	return models.ContactInput{
		Name:    "张三",
		Email:   "zhangsan@example.com",
		Subject: "合作咨询",
		Message: "想了解一下贵司产品",
	}
}

func TestContactSubmit(t *testing.T) {
	svc := newContactService(t)

	t.Run("正常提交初始状态为pending", func(t *testing.T) {
		contact, err := svc.Submit(validContactInput())
		if err != nil {
			t.Fatalf("Submit 返回错误: %v", err)
		}
		if contact.Status != models.ContactStatusPending {
			t.Errorf("Status = %q, want pending", contact.Status)
		}
		if contact.ID == 0 {
			t.Error("提交后应有记录 ID")
		}
	})

	t.Run("必填项缺失报错", func(t *testing.T) {
		tests := []struct {
			name  string
			wreck func(*models.ContactInput)
		}{
			{"缺姓名", func(in *models.ContactInput) { in.Name = "" }},
			{"缺邮箱", func(in *models.ContactInput) { in.Email = "" }},
			{"缺主题", func(in *models.ContactInput) { in.Subject = "" }},
			{"缺正文", func(in *models.ContactInput) { in.Message = "" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := validContactInput()
				tt.wreck(&input)
				if _, err := svc.Submit(input); !errors.Is(err, ErrContactFieldsRequired) {
					t.Errorf("err = %v, want ErrContactFieldsRequired", err)
				}
			})
		}
	})

	t.Run("邮箱格式不正确报错", func(t *testing.T) {
		input := validContactInput()
		input.Email = "not-an-email"
		if _, err := svc.Submit(input); !errors.Is(err, ErrInvalidContactEmail) {
			t.Errorf("err = %v, want ErrInvalidContactEmail", err)
		}
	})

	t.Run("文本字段入库前剥离HTML", func(t *testing.T) {
		input := validContactInput()
		input.Name = "<script>alert(1)</script>张三"
		input.Message = "<b>你好</b>"
		contact, err := svc.Submit(input)
		if err != nil {
			t.Fatalf("Submit 返回错误: %v", err)
		}
		if contact.Name != "张三" {
			t.Errorf("Name = %q, want 剥离后的 %q", contact.Name, "张三")
		}
		if contact.Message != "你好" {
			t.Errorf("Message = %q, want 剥离后的 %q", contact.Message, "你好")
		}
	})
}

func TestContactUpdateStatus(t *testing.T) {
	svc := newContactService(t)

	contact, err := svc.Submit(validContactInput())
	if err != nil {
		t.Fatalf("Submit 返回错误: %v", err)
	}

	t.Run("非法状态值报错", func(t *testing.T) {
		if _, err := svc.UpdateStatus(contact.ID, "archived"); !errors.Is(err, ErrInvalidContactStatus) {
			t.Errorf("err = %v, want ErrInvalidContactStatus", err)
		}
	})

	t.Run("首次转为replied落定repliedAt", func(t *testing.T) {
		updated, err := svc.UpdateStatus(contact.ID, models.ContactStatusReplied)
		if err != nil {
			t.Fatalf("UpdateStatus 返回错误: %v", err)
		}
		if updated.RepliedAt == nil {
			t.Fatal("首次转为 replied 后 repliedAt 不应为空")
		}
		firstRepliedAt := *updated.RepliedAt

		// 切走再切回，时间不变
		if _, err := svc.UpdateStatus(contact.ID, models.ContactStatusClosed); err != nil {
			t.Fatalf("UpdateStatus 返回错误: %v", err)
		}
		again, err := svc.UpdateStatus(contact.ID, models.ContactStatusReplied)
		if err != nil {
			t.Fatalf("UpdateStatus 返回错误: %v", err)
		}
		if again.RepliedAt == nil || !again.RepliedAt.Equal(firstRepliedAt) {
			t.Errorf("repliedAt = %v, 应保持首次时间 %v", again.RepliedAt, firstRepliedAt)
		}
	})

	t.Run("记录不存在报错", func(t *testing.T) {
		if _, err := svc.UpdateStatus(9999, models.ContactStatusClosed); !errors.Is(err, repositories.ErrContactNotFound) {
			t.Errorf("err = %v, want ErrContactNotFound", err)
		}
	})
}

func TestContactListFilterByStatus(t *testing.T) {
	svc := newContactService(t)

	for i := 0; i < 3; i++ {
		contact, err := svc.Submit(validContactInput())
		if err != nil {
			t.Fatalf("Submit 返回错误: %v", err)
		}
		if i == 0 {
			if _, err := svc.UpdateStatus(contact.ID, models.ContactStatusClosed); err != nil {
				t.Fatalf("UpdateStatus 返回错误: %v", err)
			}
		}
	}

	_, total, err := svc.List(repositories.ContactListFilter{
		Pagination: pagination(1, 10),
		Status:     models.ContactStatusPending,
	})
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}
	if total != 2 {
		t.Errorf("pending total = %d, want 2", total)
	}
}
