package game

import (
	"encoding/binary"
	"math"
)

// SampleRate 合成音效的采样率
const SampleRate = 48000

// Waveform 振荡器波形
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSawtooth
	WaveSquare
)

// Ramp 指数渐变参数：在 Duration 秒内从 From 变化到 To
// From 与 To 必须同号且不为 0
type Ramp struct {
	From, To float64
	Duration float64
}

// At 返回 t 秒时的值，超出区间后保持 To
func (r Ramp) At(t float64) float64 {
	if r.Duration <= 0 || t >= r.Duration {
		return r.To
	}
	if t <= 0 {
		return r.From
	}
	return r.From * math.Pow(r.To/r.From, t/r.Duration)
}

// Voice 一个振荡器声部
type Voice struct {
	Wave Waveform
	// Start 声部开始时间（秒，相对于音效起点）
	Start    float64
	Duration float64
	Freq     Ramp
	Gain     Ramp
	// Cutoff 单极低通截止频率，Duration 为 0 时不滤波
	Cutoff Ramp
}

// oscillate 根据相位 (0-1) 计算波形采样
func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case WaveSawtooth:
		return 2*phase - 1
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Render 将多个声部混合为单声道浮点采样
func Render(voices ...Voice) []float64 {
	end := 0.0
	for _, v := range voices {
		end = math.Max(end, v.Start+v.Duration)
	}
	out := make([]float64, int(math.Round(end*SampleRate)))

	for _, v := range voices {
		phase := 0.0
		lowpass := 0.0
		first := int(math.Round(v.Start * SampleRate))
		last := int(math.Round((v.Start + v.Duration) * SampleRate))
		if last > len(out) {
			last = len(out)
		}
		for i := first; i < last; i++ {
			t := float64(i-first) / SampleRate
			s := oscillate(v.Wave, phase)
			if v.Cutoff.Duration > 0 {
				// 单极低通：alpha = dt / (RC + dt)
				rc := 1 / (2 * math.Pi * v.Cutoff.At(t))
				alpha := (1.0 / SampleRate) / (rc + 1.0/SampleRate)
				lowpass += alpha * (s - lowpass)
				s = lowpass
			}
			out[i] += s * v.Gain.At(t)

			phase += v.Freq.At(t) / SampleRate
			phase -= math.Floor(phase)
		}
	}
	return out
}

// EncodeStereo16 将单声道浮点采样编码为 16 位小端立体声 PCM
func EncodeStereo16(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

// LaunchSweep 发射音效：正弦 200→800Hz 上扫，0.5 秒
func LaunchSweep() []float64 {
	return Render(Voice{
		Wave:     WaveSine,
		Duration: 0.5,
		Freq:     Ramp{From: 200, To: 800, Duration: 0.5},
		Gain:     Ramp{From: 0.1, To: 0.01, Duration: 0.5},
	})
}

// BeepPitch 倒计时每次递减的音高，数字越小音越高，GO 为 880Hz
func BeepPitch(count int) float64 {
	if count <= 0 {
		return 880
	}
	return 440 + float64(3-count)*110
}

// CountdownBeep 倒计时提示音：0.3 秒正弦
func CountdownBeep(pitch float64) []float64 {
	return Render(Voice{
		Wave:     WaveSine,
		Duration: 0.3,
		Freq:     Ramp{From: pitch, To: pitch},
		Gain:     Ramp{From: 0.08, To: 0.001, Duration: 0.3},
	})
}

// WarpSound 跃迁音效：锯齿波 100→2000Hz 经低通扫频，0.8 秒处叠加 40Hz 方波冲击
func WarpSound() []float64 {
	return Render(
		Voice{
			Wave:     WaveSawtooth,
			Duration: 1,
			Freq:     Ramp{From: 100, To: 2000, Duration: 1},
			Gain:     Ramp{From: 0.06, To: 0.001, Duration: 1},
			Cutoff:   Ramp{From: 500, To: 4000, Duration: 1},
		},
		Voice{
			Wave:     WaveSquare,
			Start:    0.8,
			Duration: 0.4,
			Freq:     Ramp{From: 40, To: 40},
			Gain:     Ramp{From: 0.1, To: 0.001, Duration: 0.4},
		},
	)
}
