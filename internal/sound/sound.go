package sound

import (
	"encoding/binary"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

const (
	sampleRate   = 22050
	beepDuration = 1.2 // секунды
)

// Player проигрывает короткие звуковые сигналы. Для каждого типа
// уведомления свой тон; WAV-файлы генерируются при первом запуске.
// Ошибки воспроизведения глотаются: звук — не причина ронять напоминания.
type Player struct {
	mu      sync.Mutex
	dir     string
	enabled bool
	volume  float64

	waterSound   string
	breakSound   string
	successSound string

	playerBin  string
	playerArgs []string
}

func New(dir string, enabled bool, volume float64) *Player {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	p := &Player{
		dir:          dir,
		enabled:      enabled,
		volume:       volume,
		waterSound:   filepath.Join(dir, "water_reminder.wav"),
		breakSound:   filepath.Join(dir, "break_reminder.wav"),
		successSound: filepath.Join(dir, "success.wav"),
	}

	p.playerBin, p.playerArgs = findPlayer()
	if p.enabled && p.playerBin == "" {
		log.Println("⚠️ Аудиоплеер не найден, звуковые сигналы отключены")
		p.enabled = false
	}

	if p.enabled {
		p.ensureSoundsExist()
	}

	return p
}

// findPlayer ищет системный проигрыватель WAV
func findPlayer() (string, []string) {
	candidates := []struct {
		bin  string
		args []string
	}{
		{"paplay", nil},
		{"aplay", []string{"-q"}},
		{"afplay", nil},
	}

	for _, c := range candidates {
		if path, err := exec.LookPath(c.bin); err == nil {
			return path, c.args
		}
	}
	return "", nil
}

func (p *Player) ensureSoundsExist() {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		log.Printf("⚠️ Каталог звуков недоступен: %v", err)
		p.enabled = false
		return
	}

	tones := []struct {
		path      string
		frequency float64
	}{
		{p.waterSound, 800},
		{p.breakSound, 600},
		{p.successSound, 1000},
	}

	for _, tone := range tones {
		if _, err := os.Stat(tone.path); err == nil {
			continue
		}
		if err := p.generateBeep(tone.path, tone.frequency); err != nil {
			log.Printf("⚠️ Ошибка генерации звука %s: %v", tone.path, err)
		}
	}
}

// generateBeep пишет WAV-файл с синусоидой заданной частоты.
// Громкость закладывается в амплитуду при генерации.
func (p *Player) generateBeep(path string, frequency float64) error {
	numSamples := int(sampleRate * beepDuration)
	amplitude := 32767.0 * 0.5 * p.volume

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dataSize := numSamples * 2 // 16 бит, моно

	// RIFF-заголовок
	if _, err := f.Write([]byte("RIFF")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(36+dataSize)); err != nil {
		return err
	}
	if _, err := f.Write([]byte("WAVEfmt ")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(16)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(1)); err != nil { // PCM
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(1)); err != nil { // моно
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(sampleRate)); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(sampleRate*2)); err != nil { // байт/сек
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(2)); err != nil { // выравнивание
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint16(16)); err != nil { // бит на сэмпл
		return err
	}
	if _, err := f.Write([]byte("data")); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(dataSize)); err != nil {
		return err
	}

	samples := make([]int16, numSamples)
	for i := range samples {
		samples[i] = int16(amplitude * math.Sin(2*math.Pi*frequency*float64(i)/sampleRate))
	}
	return binary.Write(f, binary.LittleEndian, samples)
}

// SetEnabled включает или выключает звук
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if enabled && p.playerBin == "" {
		return
	}
	p.enabled = enabled
	if p.enabled {
		p.ensureSoundsExist()
	}
}

// Enabled сообщает текущее состояние звука
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// PlayWater проигрывает сигнал напоминания о воде
func (p *Player) PlayWater() {
	p.play(p.waterSound)
}

// PlayBreak проигрывает сигнал напоминания о перерыве
func (p *Player) PlayBreak() {
	p.play(p.breakSound)
}

// PlaySuccess проигрывает сигнал успеха
func (p *Player) PlaySuccess() {
	p.play(p.successSound)
}

func (p *Player) play(path string) {
	p.mu.Lock()
	enabled := p.enabled
	bin := p.playerBin
	args := append([]string{}, p.playerArgs...)
	p.mu.Unlock()

	if !enabled || bin == "" {
		return
	}

	go func() {
		cmd := exec.Command(bin, append(args, path)...)
		if err := cmd.Run(); err != nil {
			log.Printf("⚠️ Ошибка воспроизведения %s: %v", filepath.Base(path), err)
		}
	}()
}
