package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// ClosableScene records how many times Close was called.
type ClosableScene struct {
	MockScene
	closed int
}

// Close implements Closer.
func (c *ClosableScene) Close() {
	c.closed++
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Don't set any scene, currentScene should be nil
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	// Create a dummy screen image
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDrawNoScene verifies that Draw handles nil scene gracefully.
func TestSceneManagerDrawNoScene(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(800, 600)
	// Don't set any scene, currentScene should be nil
	sm.Draw(screen) // Should not panic
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	// Switch to scene1
	sm.SwitchTo(scene1)
	sm.Update(0.016)

	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	// Switch to scene2
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}

// TestSceneManagerClosesReplacedScene 测试切换场景时关闭旧场景
func TestSceneManagerClosesReplacedScene(t *testing.T) {
	tests := []struct {
		name       string
		run        func(sm *SceneManager, first *ClosableScene)
		wantClosed int
	}{
		{
			name:       "切换到新场景",
			run:        func(sm *SceneManager, _ *ClosableScene) { sm.SwitchTo(&MockScene{}) },
			wantClosed: 1,
		},
		{
			name:       "切换到同一场景不关闭",
			run:        func(sm *SceneManager, first *ClosableScene) { sm.SwitchTo(first) },
			wantClosed: 0,
		},
		{
			name:       "管理器关闭",
			run:        func(sm *SceneManager, _ *ClosableScene) { sm.Close() },
			wantClosed: 1,
		},
		{
			name: "重复关闭只关闭一次",
			run: func(sm *SceneManager, _ *ClosableScene) {
				sm.Close()
				sm.Close()
			},
			wantClosed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			first := &ClosableScene{}
			sm.SwitchTo(first)

			tt.run(sm, first)

			if first.closed != tt.wantClosed {
				t.Errorf("Close 调用次数: got %d, want %d", first.closed, tt.wantClosed)
			}
		})
	}
}

// TestSceneManagerCloseClearsScene 测试关闭后不再转发 Update
func TestSceneManagerCloseClearsScene(t *testing.T) {
	sm := NewSceneManager()
	scene := &ClosableScene{}
	sm.SwitchTo(scene)
	sm.Close()

	if sm.GetCurrentScene() != nil {
		t.Error("Close 后不应有活动场景")
	}
	sm.Update(0.016)
	if scene.updateCalled {
		t.Error("Close 后不应再调用 Update")
	}
}
