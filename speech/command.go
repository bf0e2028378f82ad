package speech

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/file-command-nexus/nexus/media"
)

const synthTimeout = 60 * time.Second

// commandEngine speaks through external tools found on PATH: the native
// `say` command where available, otherwise an edge-tts synthesizer paired
// with an audio player. Synthesized clips go through the media cache so
// replaying an utterance never re-synthesizes it.
type commandEngine struct {
	say    string // path to `say`; empty when unavailable
	synth  string // path to `edge-tts`
	player string // path to the audio player
	clips  *media.Cache

	mu      sync.Mutex
	playing *exec.Cmd
	gen     uint64 // bumped on every Speak/Cancel; stale playback is dropped
}

func newCommandEngine(cfg *Config, clips *media.Cache) (Engine, error) {
	e := &commandEngine{clips: clips}

	if path, err := exec.LookPath("say"); err == nil {
		e.say = path
		return e, nil
	}

	synth, err := exec.LookPath("edge-tts")
	if err != nil {
		return nil, ErrNoSynthesizer
	}
	e.synth = synth

	for _, candidate := range []string{"afplay", "mpv", "ffplay"} {
		if path, lookErr := exec.LookPath(candidate); lookErr == nil {
			e.player = path
			break
		}
	}
	if e.player == "" {
		return nil, fmt.Errorf("%w: no audio player", ErrNoSynthesizer)
	}

	return e, nil
}

func (e *commandEngine) Voices(ctx context.Context) ([]Voice, error) {
	if e.say != "" {
		out, err := exec.CommandContext(ctx, e.say, "-v", "?").Output()
		if err != nil {
			return nil, fmt.Errorf("failed to list voices: %w", err)
		}
		return parseSayVoices(out), nil
	}

	out, err := exec.CommandContext(ctx, e.synth, "--list-voices").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list voices: %w", err)
	}
	return parseEdgeVoices(out), nil
}

func (e *commandEngine) Speak(ctx context.Context, u Utterance) error {
	if strings.TrimSpace(u.Text) == "" {
		return nil
	}

	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.stopLocked()
	e.mu.Unlock()

	go e.run(gen, u)
	return nil
}

func (e *commandEngine) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	e.stopLocked()
	return nil
}

// stopLocked kills in-flight playback. Caller holds e.mu.
func (e *commandEngine) stopLocked() {
	if e.playing != nil {
		_ = e.playing.Process.Kill()
		e.playing = nil
	}
}

// run synthesizes and plays one utterance in the background. gen guards
// against a newer Speak or Cancel having superseded this utterance.
func (e *commandEngine) run(gen uint64, u Utterance) {
	if e.say != "" {
		var args []string
		if u.Voice != "" {
			args = append(args, "-v", u.Voice)
		}
		args = append(args, u.Text)
		e.start(gen, exec.Command(e.say, args...), "")
		return
	}

	data, err := e.synthesize(u)
	if err != nil {
		slog.Default().Debug("speech synthesis failed", "error", err)
		return
	}

	tmp, err := os.CreateTemp("", "nexus-clip-*.mp3")
	if err != nil {
		slog.Default().Debug("speech temp file failed", "error", err)
		return
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return
	}
	tmp.Close()

	e.start(gen, exec.Command(e.player, tmpName), tmpName)
}

// start launches playback unless this utterance has gone stale.
func (e *commandEngine) start(gen uint64, cmd *exec.Cmd, tmpName string) {
	e.mu.Lock()
	if gen != e.gen {
		e.mu.Unlock()
		if tmpName != "" {
			os.Remove(tmpName)
		}
		return
	}
	if err := cmd.Start(); err != nil {
		e.mu.Unlock()
		slog.Default().Debug("speech playback failed", "error", err)
		if tmpName != "" {
			os.Remove(tmpName)
		}
		return
	}
	e.playing = cmd
	e.mu.Unlock()

	go func() {
		_ = cmd.Wait()
		e.mu.Lock()
		if e.playing == cmd {
			e.playing = nil
		}
		e.mu.Unlock()
		if tmpName != "" {
			os.Remove(tmpName)
		}
	}()
}

func (e *commandEngine) synthesize(u Utterance) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), synthTimeout)
	defer cancel()

	key := clipKey(u)
	if e.clips != nil {
		if data, ok := e.clips.Get(ctx, key); ok {
			return data, nil
		}
	}

	tmp, err := os.CreateTemp("", "nexus-synth-*.mp3")
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	args := []string{"--text", u.Text, "--write-media", tmpName}
	if u.Voice != "" {
		args = append(args, "--voice", u.Voice)
	}
	if u.Rate != "" {
		args = append(args, "--rate", u.Rate)
	}
	if err := exec.CommandContext(ctx, e.synth, args...).Run(); err != nil {
		return nil, fmt.Errorf("edge-tts: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return nil, err
	}

	if e.clips != nil {
		if putErr := e.clips.Put(ctx, key, data); putErr != nil {
			slog.Default().Debug("clip cache write failed", "error", putErr)
		}
	}
	return data, nil
}

// clipKey derives the cache key for an utterance from its voice, rate,
// and text. Identical utterances share a clip.
func clipKey(u Utterance) string {
	sum := sha256.Sum256([]byte(u.Voice + "\x00" + u.Rate + "\x00" + u.Text))
	return "clips/" + hex.EncodeToString(sum[:10]) + ".mp3"
}

// parseSayVoices parses `say -v ?` output: one voice per line, name then
// language, a # comment trailing.
func parseSayVoices(out []byte) []Voice {
	var voices []Voice
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		voices = append(voices, Voice{Name: fields[0], Language: fields[1]})
	}
	return voices
}

// parseEdgeVoices parses `edge-tts --list-voices` tabular output,
// skipping the header and separator rows. Language is derived from the
// locale prefix of the voice name (e.g. "en-US-AriaNeural" -> "en-US").
func parseEdgeVoices(out []byte) []Voice {
	var voices []Voice
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "Name" || strings.HasPrefix(fields[0], "-") {
			continue
		}
		name := fields[0]
		language := name
		if parts := strings.SplitN(name, "-", 3); len(parts) == 3 {
			language = parts[0] + "-" + parts[1]
		}
		voices = append(voices, Voice{Name: name, Language: language})
	}
	return voices
}
