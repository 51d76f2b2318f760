package utils

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

// BrowserCommand 返回在指定平台上打开 URL 的命令
func BrowserCommand(goos, url string) (name string, args []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// OpenURL 使用系统默认浏览器打开 URL
// 只启动进程，不等待浏览器退出，启动器在后台回收
func OpenURL(url string) error {
	name, args := BrowserCommand(runtime.GOOS, url)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("no browser launcher %q: %w", name, err)
	}
	if _, err := startDetached(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// startDetached 启动进程并在后台 Wait 回收
// 返回的通道在进程退出后收到 Wait 的结果
func startDetached(name string, args ...string) (<-chan error, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		if err != nil {
			log.Printf("[Browser] Launcher %s exited: %v", name, err)
		}
		done <- err
	}()
	return done, nil
}

// BrowserNavigator 将跳转交给系统浏览器
type BrowserNavigator struct {
	// DryRun 为 true 时只记录日志，不启动浏览器
	DryRun bool
	// open 可替换的打开函数，nil 时使用 OpenURL
	open func(url string) error
}

// Navigate 打开 URL
func (n *BrowserNavigator) Navigate(url string) error {
	if n.DryRun {
		log.Printf("[Browser] Dry run, would open: %s", url)
		return nil
	}
	open := n.open
	if open == nil {
		open = OpenURL
	}
	return open(url)
}
