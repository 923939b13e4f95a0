package effects

import (
	"log"

	"github.com/milk9111/executioner/assets"
)

type oneShot interface {
	IsPlaying() bool
	Rewind() error
	Play()
	SetVolume(volume float64)
}

// Sounds plays one-shot cues by name. Players are created lazily and
// reused; a cue that fails to load is reported once and then skipped.
type Sounds struct {
	Volume float64

	load    func(name string) (oneShot, error)
	players map[string]oneShot
	failed  map[string]bool
}

// NewSounds creates a player backed by the embedded sound assets.
func NewSounds() *Sounds {
	return newSounds(func(name string) (oneShot, error) {
		p, err := assets.LoadAudioPlayer(name)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}

func newSounds(load func(name string) (oneShot, error)) *Sounds {
	return &Sounds{
		Volume:  0.8,
		load:    load,
		players: make(map[string]oneShot),
		failed:  make(map[string]bool),
	}
}

// PlayOneShot restarts the named cue from the beginning.
func (s *Sounds) PlayOneShot(name string) {
	if s == nil || name == "" || s.failed[name] {
		return
	}
	p, ok := s.players[name]
	if !ok {
		var err error
		p, err = s.load(name)
		if err != nil {
			s.failed[name] = true
			log.Printf("effects: load sound %q: %v", name, err)
			return
		}
		s.players[name] = p
	}
	if err := p.Rewind(); err != nil {
		log.Printf("effects: rewind %q: %v", name, err)
	}
	p.SetVolume(s.Volume)
	p.Play()
}
