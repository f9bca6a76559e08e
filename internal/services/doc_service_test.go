package services

import (
	"errors"
	"testing"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
)

func newDocService(t *testing.T) DocService {
	t.Helper()
	return NewDocService(repositories.NewGormDocRepository(newTestDB(t)))
}

func intPtr(v int) *int { return &v }

func TestDocCreateWithParent(t *testing.T) {
	svc := newDocService(t)

	parent, err := svc.Create(1, models.DocInput{
		Title:   strPtr("入门指南"),
		Slug:    strPtr("getting-started"),
		Content: strPtr("正文"),
		Status:  strPtr(models.ContentStatusPublished),
	})
	if err != nil {
		t.Fatalf("Create 返回错误: %v", err)
	}

	child, err := svc.Create(1, models.DocInput{
		Title:     strPtr("安装"),
		Slug:      strPtr("installation"),
		Content:   strPtr("正文"),
		ParentID:  &parent.ID,
		SortOrder: intPtr(1),
		Status:    strPtr(models.ContentStatusPublished),
	})
	if err != nil {
		t.Fatalf("Create 返回错误: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Errorf("ParentID = %v, want %d", child.ParentID, parent.ID)
	}
	if child.Category != "guide" {
		t.Errorf("Category = %q, want 默认值 guide", child.Category)
	}
}

func TestDocUpdateSelfParentRejected(t *testing.T) {
	svc := newDocService(t)

	doc, err := svc.Create(1, models.DocInput{
		Title:   strPtr("自引用测试"),
		Content: strPtr("正文"),
	})
	if err != nil {
		t.Fatalf("Create 返回错误: %v", err)
	}

	if _, err := svc.Update(doc.ID, models.DocInput{ParentID: &doc.ID}); !errors.Is(err, ErrDocSelfParent) {
		t.Errorf("err = %v, want ErrDocSelfParent", err)
	}
}

func TestDocListPublishedTree(t *testing.T) {
	svc := newDocService(t)

	// 两篇已发布 + 一篇草稿，sortOrder 控制顺序
	for _, doc := range []struct {
		title string
		slug  string
		sort  int
		stat  string
	}{
		{"第二篇", "second", 2, models.ContentStatusPublished},
		{"第一篇", "first", 1, models.ContentStatusPublished},
		{"草稿", "draft-doc", 0, models.ContentStatusDraft},
	} {
		_, err := svc.Create(1, models.DocInput{
			Title:     strPtr(doc.title),
			Slug:      strPtr(doc.slug),
			Content:   strPtr("正文"),
			SortOrder: intPtr(doc.sort),
			Status:    strPtr(doc.stat),
		})
		if err != nil {
			t.Fatalf("Create 返回错误: %v", err)
		}
	}

	docs, err := svc.ListPublishedTree("")
	if err != nil {
		t.Fatalf("ListPublishedTree 返回错误: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2（草稿不可见）", len(docs))
	}
	if docs[0].Slug != "first" || docs[1].Slug != "second" {
		t.Errorf("排序错误: %q, %q, want first, second", docs[0].Slug, docs[1].Slug)
	}
}
