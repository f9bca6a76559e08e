package services

import (
	"errors"
	"time"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// ErrContactFieldsRequired 表示联系表单必填项缺失
var ErrContactFieldsRequired = errors.New("请填写完整信息")

// ErrInvalidContactEmail 表示联系表单邮箱格式不正确
var ErrInvalidContactEmail = errors.New("邮箱格式不正确")

// ErrInvalidContactStatus 表示状态值不在允许的集合内
var ErrInvalidContactStatus = errors.New("无效的状态值")

// ContactService 定义了联系记录服务的接口
type ContactService interface {
	// Submit 处理公开表单提交，文本字段在入库前剥离 HTML
	Submit(input models.ContactInput) (*models.Contact, error)
	List(filter repositories.ContactListFilter) ([]models.Contact, int64, error)
	GetByID(id uint) (*models.Contact, error)
	// UpdateStatus 更新处理状态；repliedAt 只在首次转为 replied 时落定
	UpdateStatus(id uint, status string) (*models.Contact, error)
	Delete(id uint) error
}

// contactService 是 ContactService 的实现
type contactService struct {
	repo repositories.ContactRepository
}

// NewContactService 创建一个新的 contactService 实例
func NewContactService(repo repositories.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// Submit 校验并保存公开表单提交，初始状态为 pending
func (s *contactService) Submit(input models.ContactInput) (*models.Contact, error) {
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return nil, ErrContactFieldsRequired
	}
	if !utils.ValidateEmailFormat(input.Email) {
		return nil, ErrInvalidContactEmail
	}

	contact := &models.Contact{
		Name:    utils.StripHTML(input.Name),
		Email:   input.Email,
		Company: utils.StripHTML(input.Company),
		Phone:   utils.StripHTML(input.Phone),
		Subject: utils.StripHTML(input.Subject),
		Message: utils.StripHTML(input.Message),
		Status:  models.ContactStatusPending,
	}
	if err := s.repo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// List 查询联系记录列表（后台）
func (s *contactService) List(filter repositories.ContactListFilter) ([]models.Contact, int64, error) {
	return s.repo.List(filter)
}

// GetByID 获取联系记录详情（后台）
func (s *contactService) GetByID(id uint) (*models.Contact, error) {
	return s.repo.FindByID(id)
}

// UpdateStatus 更新联系记录状态。
// 状态值必须在枚举集合内；repliedAt 是单向闩锁，第二次转为
// replied 不会改动首次记录的时间。
func (s *contactService) UpdateStatus(id uint, status string) (*models.Contact, error) {
	if !models.IsValidContactStatus(status) {
		return nil, ErrInvalidContactStatus
	}

	contact, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	contact.Status = status
	if status == models.ContactStatusReplied && contact.RepliedAt == nil {
		now := time.Now()
		contact.RepliedAt = &now
	}

	if err := s.repo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete 删除联系记录
func (s *contactService) Delete(id uint) error {
	return s.repo.Delete(id)
}
