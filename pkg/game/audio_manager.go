package game

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效资源ID
const (
	SoundLaunch = "SOUND_LAUNCH"
	SoundWarp   = "SOUND_WARP"
)

// BeepSoundID 返回指定计数对应的提示音ID
func BeepSoundID(count int) string {
	return fmt.Sprintf("SOUND_BEEP_%d", count)
}

// AudioManager 音频管理器
// 职责：
//   - 按需合成并缓存音效 PCM
//   - 统一播放发射、倒计时、跃迁音效
//
// 降级模式：
//   - 没有音频上下文或静音时，所有播放调用直接返回 false
//   - 播放失败只记录日志，不影响调用方
//
// 静音只拦截播放，音频上下文始终保留，运行中可以随时取消静音。
// 管理器由创建者持有，Close 之后不再播放。
type AudioManager struct {
	context *audio.Context
	muted   bool
	closed  bool
	volume  float64

	pcm     map[string][]byte // 音效ID -> PCM 缓存
	players []*audio.Player   // 正在播放或已播放的播放器，Close 时释放
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil（进入静音降级模式）
//   - muted: 是否静音
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, muted bool) *AudioManager {
	if ctx == nil {
		log.Printf("[AudioManager] No audio context, running silent (降级模式)")
	}
	return &AudioManager{
		context: ctx,
		muted:   muted,
		volume:  1.0,
		pcm:     make(map[string][]byte),
	}
}

// Enabled 是否会真正发声
func (am *AudioManager) Enabled() bool {
	return am != nil && am.context != nil && !am.muted && !am.closed
}

// IsMuted 是否处于静音状态
func (am *AudioManager) IsMuted() bool {
	return am == nil || am.muted
}

// SetMuted 设置静音
func (am *AudioManager) SetMuted(muted bool) {
	if am == nil {
		return
	}
	am.muted = muted
	log.Printf("[AudioManager] Muted: %v", muted)
}

// SetVolume 设置音效音量，超出 0.0 ~ 1.0 的值会被截断
// 正在播放的音效同时生效
func (am *AudioManager) SetVolume(volume float64) {
	if am == nil {
		return
	}
	am.volume = math.Max(0, math.Min(1, volume))
	for _, p := range am.players {
		p.SetVolume(am.volume)
	}
}

// Volume 返回当前音量
func (am *AudioManager) Volume() float64 {
	if am == nil {
		return 0
	}
	return am.volume
}

// PlayLaunch 播放发射音效
func (am *AudioManager) PlayLaunch() bool {
	return am.PlaySound(SoundLaunch)
}

// PlayCountdownBeep 播放倒计时提示音
func (am *AudioManager) PlayCountdownBeep(count int) bool {
	return am.PlaySound(BeepSoundID(count))
}

// PlayWarp 播放跃迁音效
func (am *AudioManager) PlayWarp() bool {
	return am.PlaySound(SoundWarp)
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效资源ID（如 SoundLaunch）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.Enabled() {
		return false
	}

	pcm, err := am.getPCM(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: %v", err)
		return false
	}

	am.releaseFinished()

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(am.volume)
	player.Play()
	am.players = append(am.players, player)
	return true
}

// Preload 预先合成音效，避免首次播放时的延迟
func (am *AudioManager) Preload(soundIDs ...string) {
	if am == nil {
		return
	}
	for _, id := range soundIDs {
		if _, err := am.getPCM(id); err != nil {
			log.Printf("[AudioManager] Warning: %v", err)
		}
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}

// Close 停止并释放所有播放器，之后不再播放
func (am *AudioManager) Close() {
	if am == nil || am.closed {
		return
	}
	am.closed = true
	log.Printf("[AudioManager] Closing %d players", len(am.players))
	for _, p := range am.players {
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player: %v", err)
		}
	}
	am.players = nil
}

// getPCM 获取或合成音效 PCM
func (am *AudioManager) getPCM(soundID string) ([]byte, error) {
	if pcm, ok := am.pcm[soundID]; ok {
		return pcm, nil
	}

	samples, err := synthesize(soundID)
	if err != nil {
		return nil, err
	}
	pcm := EncodeStereo16(samples)
	am.pcm[soundID] = pcm
	return pcm, nil
}

// releaseFinished 释放已播放完毕的播放器
func (am *AudioManager) releaseFinished() {
	alive := am.players[:0]
	for _, p := range am.players {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		_ = p.Close()
	}
	am.players = alive
}

// synthesize 根据音效ID合成采样
func synthesize(soundID string) ([]float64, error) {
	switch soundID {
	case SoundLaunch:
		return LaunchSweep(), nil
	case SoundWarp:
		return WarpSound(), nil
	}

	var count int
	if _, err := fmt.Sscanf(soundID, "SOUND_BEEP_%d", &count); err == nil {
		return CountdownBeep(BeepPitch(count)), nil
	}
	return nil, fmt.Errorf("sound not found: %s", soundID)
}
