// adminctl 是 cloudmo-api 的后台管理命令行工具，
// 登录后把会话保存到本地文件，后续命令从会话恢复 JWT
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/pkg/client"
)

const usageText = `用法: adminctl [-server URL] <命令> [参数]

公开命令:
  health                        检查服务状态
  login -u 用户名 -p 密码        登录并保存会话
  settings                      查看公开设置

需要登录的命令:
  whoami                        查看当前登录用户
  logout                        退出登录并清除会话
  passwd -old 原密码 -new 新密码  修改密码
  articles [-page N] [-status S] [-keyword K]   文章列表（后台）
  news     [-page N] [-status S] [-keyword K]   新闻列表（后台）
  docs     [-page N] [-status S] [-keyword K]   文档列表（后台）
  contacts [-page N] [-status S]                联系记录列表
  contact-status -id ID -status 状态             更新联系记录状态
  all-settings [-group G]       查看全部设置
  set -key K -value V [-group G] 写入单个设置项
`

func main() {
	log.SetFlags(0)

	server := flag.String("server", envOr("CLOUDMO_SERVER", "http://localhost:3000"), "服务地址")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usageText) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := client.NewSessionStore(client.DefaultSessionPath())
	command, rest := args[0], args[1:]

	var err error
	switch command {
	case "health":
		err = runHealth(ctx, client.New(*server))
	case "login":
		err = runLogin(ctx, client.New(*server), store, rest)
	case "settings":
		err = runPublicSettings(ctx, client.New(*server))
	default:
		// 其余命令都需要已保存的登录会话
		var c *client.Client
		c, err = restoreSession(*server, store)
		if err == nil {
			err = runAuthed(ctx, c, store, command, rest)
		}
	}
	if err != nil {
		log.Fatalf("adminctl: %v", err)
	}
}

// restoreSession 从本地会话文件恢复客户端，未登录时直接报错
func restoreSession(server string, store *client.SessionStore) (*client.Client, error) {
	session, err := store.Load()
	if err != nil {
		return nil, err
	}
	return client.New(server, client.WithToken(session.Token)), nil
}

func runAuthed(ctx context.Context, c *client.Client, store *client.SessionStore, command string, args []string) error {
	switch command {
	case "whoami":
		user, err := c.Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)
	case "logout":
		if err := c.Logout(ctx); err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("已退出登录")
		return nil
	case "passwd":
		fs := flag.NewFlagSet("passwd", flag.ExitOnError)
		oldPwd := fs.String("old", "", "原密码")
		newPwd := fs.String("new", "", "新密码")
		fs.Parse(args)
		if err := c.ChangePassword(ctx, *oldPwd, *newPwd); err != nil {
			return err
		}
		fmt.Println("密码修改成功")
		return nil
	case "articles":
		page, err := c.ListAllArticles(ctx, listOptions(command, args))
		if err != nil {
			return err
		}
		return printJSON(page)
	case "news":
		page, err := c.ListAllNews(ctx, listOptions(command, args))
		if err != nil {
			return err
		}
		return printJSON(page)
	case "docs":
		page, err := c.ListAllDocs(ctx, listOptions(command, args))
		if err != nil {
			return err
		}
		return printJSON(page)
	case "contacts":
		page, err := c.ListContacts(ctx, listOptions(command, args))
		if err != nil {
			return err
		}
		return printJSON(page)
	case "contact-status":
		fs := flag.NewFlagSet("contact-status", flag.ExitOnError)
		id := fs.String("id", "", "联系记录 ID")
		status := fs.String("status", "", "目标状态 (pending/processing/replied/closed)")
		fs.Parse(args)
		contactID, err := strconv.ParseUint(*id, 10, 64)
		if err != nil || contactID == 0 {
			return errors.New("请用 -id 指定合法的联系记录 ID")
		}
		contact, err := c.UpdateContactStatus(ctx, uint(contactID), *status)
		if err != nil {
			return err
		}
		return printJSON(contact)
	case "all-settings":
		fs := flag.NewFlagSet("all-settings", flag.ExitOnError)
		group := fs.String("group", "", "只查看指定分组")
		fs.Parse(args)
		settings, err := c.AllSettings(ctx, *group)
		if err != nil {
			return err
		}
		return printJSON(settings)
	case "set":
		fs := flag.NewFlagSet("set", flag.ExitOnError)
		key := fs.String("key", "", "设置键")
		value := fs.String("value", "", "设置值")
		group := fs.String("group", models.SettingGroupGeneral, "设置分组")
		fs.Parse(args)
		if *key == "" {
			return errors.New("请用 -key 指定设置键")
		}
		input := []models.SettingInput{{Key: *key, Value: *value, Group: *group}}
		if err := c.UpdateSettings(ctx, input); err != nil {
			return err
		}
		fmt.Println("设置保存成功")
		return nil
	default:
		flag.Usage()
		return fmt.Errorf("未知命令 %q", command)
	}
}

func runHealth(ctx context.Context, c *client.Client) error {
	status, err := c.Health(ctx)
	if err != nil {
		return err
	}
	return printJSON(status)
}

func runLogin(ctx context.Context, c *client.Client, store *client.SessionStore, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "用户名或邮箱")
	password := fs.String("p", "", "密码")
	fs.Parse(args)

	result, err := c.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	if err := store.Save(&client.Session{Token: result.Token, User: result.User}); err != nil {
		return err
	}
	fmt.Printf("登录成功: %s (%s)\n", result.User.Username, result.User.Role)
	return nil
}

func runPublicSettings(ctx context.Context, c *client.Client) error {
	settings, err := c.PublicSettings(ctx)
	if err != nil {
		return err
	}
	return printJSON(settings)
}

// listOptions 解析列表类命令共享的分页与筛选参数
func listOptions(name string, args []string) client.ListOptions {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	page := fs.Int("page", 1, "页码")
	pageSize := fs.Int("pageSize", 10, "每页数量")
	category := fs.String("category", "", "分类")
	keyword := fs.String("keyword", "", "标题/摘要关键字")
	status := fs.String("status", "", "状态筛选")
	fs.Parse(args)
	return client.ListOptions{
		Page:     *page,
		PageSize: *pageSize,
		Category: *category,
		Keyword:  *keyword,
		Status:   *status,
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
