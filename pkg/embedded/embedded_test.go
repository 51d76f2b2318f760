package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/theme.yaml":              {Data: []byte("title: CYBER_FUSION\n")},
		"data/shaders/background.kage": {Data: []byte("//kage:unit pixels\npackage main\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) 后 IsInitialized() 应返回 false")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Init() 后 IsInitialized() 应返回 true")
	}
}

// TestNotInitialized 测试未初始化时的错误
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := ReadFile("data/theme.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, 期望 ErrNotInitialized", err)
	}
}

// TestReadFile 测试路径规范化与读取
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"标准路径", "data/theme.yaml", "title: CYBER_FUSION\n", false},
		{"带 ./ 前缀", "./data/theme.yaml", "title: CYBER_FUSION\n", false},
		{"未知前缀", "assets/theme.yaml", "", true},
		{"着色器", "data/shaders/background.kage", "//kage:unit pixels\npackage main\n", false},
		{"文件不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, 期望 %q", tt.path, got, tt.want)
			}
		})
	}
}
