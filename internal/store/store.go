package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/jonathan/resume-site/internal/resume"
)

// ErrEntryNotFound indicates an ID-addressed entry does not exist.
type ErrEntryNotFound struct {
	ID string
}

func (e *ErrEntryNotFound) Error() string {
	return fmt.Sprintf("entry not found: %s", e.ID)
}

// Store holds the single Résumé Document and exposes the typed mutation set.
// Every mutation serializes the whole document and writes it to the backend
// before returning. The original runs on a single-threaded event loop; an
// HTTP server does not, so the store serializes access with a mutex.
type Store struct {
	mu      sync.Mutex
	backend Backend
	doc     *resume.Document
}

// Open loads the persisted snapshot and returns a ready store. Loading fails
// soft: an absent snapshot, a read error, unparsable JSON, or a document
// failing the validity check all fall back to the compiled-in default. The
// default is not persisted eagerly; persistence happens on first mutation.
func Open(ctx context.Context, backend Backend) *Store {
	return &Store{
		backend: backend,
		doc:     load(ctx, backend),
	}
}

func load(ctx context.Context, backend Backend) *resume.Document {
	data, err := backend.Read(ctx)
	if err != nil {
		log.Printf("store: snapshot read failed, using default document: %v", err)
		return resume.DefaultDocument()
	}
	if data == nil {
		return resume.DefaultDocument()
	}

	var doc resume.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("store: snapshot unparsable, using default document: %v", err)
		return resume.DefaultDocument()
	}
	if !doc.Valid() {
		log.Printf("store: snapshot failed validity check, using default document")
		return resume.DefaultDocument()
	}
	return &doc
}

// Document returns a deep copy of the current document.
func (s *Store) Document() *resume.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Persist serializes the current document and writes it to the backend.
// Calling it twice with no intervening mutation writes identical bytes.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := s.backend.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}
	return nil
}

// mutate applies fn to the document under the lock and persists the result.
// fn runs to completion before any other mutation is admitted, so mutations
// are applied and persisted in dispatch order.
func (s *Store) mutate(ctx context.Context, fn func(*resume.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.persistLocked(ctx)
}

// Replace swaps in a whole new document. Used by the import path after the
// candidate document has been validated.
func (s *Store) Replace(ctx context.Context, doc *resume.Document) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		*d = *doc.Clone()
		return nil
	})
}

// --- Scalar fields ---

// SetSummary replaces the professional summary.
func (s *Store) SetSummary(ctx context.Context, summary string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		d.Summary = summary
		return nil
	})
}

// SetIntroVideoURL replaces the introduction video URL.
func (s *Store) SetIntroVideoURL(ctx context.Context, url string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		d.IntroVideoURL = url
		return nil
	})
}

// SetPersonalInfo replaces the contact block.
func (s *Store) SetPersonalInfo(ctx context.Context, info resume.PersonalInfo) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		d.PersonalInfo = info
		return nil
	})
}

// --- Experience (prepend semantics: newest entry first) ---

// AddExperience prepends a placeholder work-history entry with a fresh ID and
// returns it.
func (s *Store) AddExperience(ctx context.Context) (resume.Experience, error) {
	entry := resume.NewExperience()
	err := s.mutate(ctx, func(d *resume.Document) error {
		d.Experience = append([]resume.Experience{entry}, d.Experience...)
		return nil
	})
	return entry, err
}

// UpdateExperience replaces the entry whose ID matches. The ID itself is
// never changed by an update.
func (s *Store) UpdateExperience(ctx context.Context, entry resume.Experience) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		i := d.ExperienceByID(entry.ID)
		if i < 0 {
			return &ErrEntryNotFound{ID: entry.ID}
		}
		d.Experience[i] = entry
		return nil
	})
}

// RemoveExperience deletes the entry whose ID matches.
func (s *Store) RemoveExperience(ctx context.Context, id string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		i := d.ExperienceByID(id)
		if i < 0 {
			return &ErrEntryNotFound{ID: id}
		}
		d.Experience = append(d.Experience[:i], d.Experience[i+1:]...)
		return nil
	})
}

// --- Project videos (append semantics) ---

// AddProjectVideo appends a placeholder media item with a fresh ID and
// returns it.
func (s *Store) AddProjectVideo(ctx context.Context) (resume.MediaItem, error) {
	item := resume.NewProjectVideo()
	err := s.mutate(ctx, func(d *resume.Document) error {
		d.ProjectVideos = append(d.ProjectVideos, item)
		return nil
	})
	return item, err
}

// UpdateProjectVideo replaces the media item whose ID matches.
func (s *Store) UpdateProjectVideo(ctx context.Context, item resume.MediaItem) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		i := d.ProjectVideoByID(item.ID)
		if i < 0 {
			return &ErrEntryNotFound{ID: item.ID}
		}
		d.ProjectVideos[i] = item
		return nil
	})
}

// RemoveProjectVideo deletes the media item whose ID matches.
func (s *Store) RemoveProjectVideo(ctx context.Context, id string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		i := d.ProjectVideoByID(id)
		if i < 0 {
			return &ErrEntryNotFound{ID: id}
		}
		d.ProjectVideos = append(d.ProjectVideos[:i], d.ProjectVideos[i+1:]...)
		return nil
	})
}

// --- Skills and achievements (index-addressed string lists, append semantics) ---
//
// The UI only ever supplies indices it just rendered, so an out-of-range
// index is treated as a no-op rather than corrupting state.

// AddKeySkill appends a headline skill.
func (s *Store) AddKeySkill(ctx context.Context, skill string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		d.Skills.Key = append(d.Skills.Key, skill)
		return nil
	})
}

// SetKeySkill replaces the headline skill at index.
func (s *Store) SetKeySkill(ctx context.Context, index int, skill string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		if index >= 0 && index < len(d.Skills.Key) {
			d.Skills.Key[index] = skill
		}
		return nil
	})
}

// RemoveKeySkill deletes the headline skill at index.
func (s *Store) RemoveKeySkill(ctx context.Context, index int) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		if index >= 0 && index < len(d.Skills.Key) {
			d.Skills.Key = append(d.Skills.Key[:index], d.Skills.Key[index+1:]...)
		}
		return nil
	})
}

// AddTechnicalSkill appends a technical skill.
func (s *Store) AddTechnicalSkill(ctx context.Context, skill string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		d.Skills.Technical = append(d.Skills.Technical, skill)
		return nil
	})
}

// SetTechnicalSkill replaces the technical skill at index.
func (s *Store) SetTechnicalSkill(ctx context.Context, index int, skill string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		if index >= 0 && index < len(d.Skills.Technical) {
			d.Skills.Technical[index] = skill
		}
		return nil
	})
}

// RemoveTechnicalSkill deletes the technical skill at index.
func (s *Store) RemoveTechnicalSkill(ctx context.Context, index int) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		if index >= 0 && index < len(d.Skills.Technical) {
			d.Skills.Technical = append(d.Skills.Technical[:index], d.Skills.Technical[index+1:]...)
		}
		return nil
	})
}

// AddAchievement appends an achievement.
func (s *Store) AddAchievement(ctx context.Context, text string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		d.Achievements = append(d.Achievements, text)
		return nil
	})
}

// SetAchievement replaces the achievement at index.
func (s *Store) SetAchievement(ctx context.Context, index int, text string) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		if index >= 0 && index < len(d.Achievements) {
			d.Achievements[index] = text
		}
		return nil
	})
}

// RemoveAchievement deletes the achievement at index.
func (s *Store) RemoveAchievement(ctx context.Context, index int) error {
	return s.mutate(ctx, func(d *resume.Document) error {
		if index >= 0 && index < len(d.Achievements) {
			d.Achievements = append(d.Achievements[:index], d.Achievements[index+1:]...)
		}
		return nil
	})
}
