package storage

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
)

// MemStorage is the map-backed Storage implementation. It holds everything
// behind one RWMutex and hands out copies, never references into the maps.
// Construct one per test with NewMemStorage; there is deliberately no
// package-level instance.
type MemStorage struct {
	mu sync.RWMutex

	exercises       map[string]models.Exercise
	workoutLogs     map[string]models.WorkoutLog
	weightEntries   map[string]models.WeightEntry
	weightAudits    map[string]models.WeightAudit
	changesAudits   map[string]models.ChangesAudit
	prChangesAudits map[string]models.PRChangesAudit
	bloodEntries    map[string]models.BloodEntry
	personalRecords map[string]models.PersonalRecord
	quotes          map[string]models.Quote
	affirmations    map[string]models.Affirmation
	thoughts        map[string]models.Thought
	supplements     map[string]models.Supplement
	photos          map[string]models.PhotoProgress
	stepEntries     map[string]models.StepEntry
	cardioEntries   map[string]models.CardioLogEntry
	shortcuts       map[string]models.ShortcutSetting
	tabs            map[string]models.TabSetting
	userSettings    *models.UserSettings
}

// NewMemStorage returns an empty in-memory store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		exercises:       make(map[string]models.Exercise),
		workoutLogs:     make(map[string]models.WorkoutLog),
		weightEntries:   make(map[string]models.WeightEntry),
		weightAudits:    make(map[string]models.WeightAudit),
		changesAudits:   make(map[string]models.ChangesAudit),
		prChangesAudits: make(map[string]models.PRChangesAudit),
		bloodEntries:    make(map[string]models.BloodEntry),
		personalRecords: make(map[string]models.PersonalRecord),
		quotes:          make(map[string]models.Quote),
		affirmations:    make(map[string]models.Affirmation),
		thoughts:        make(map[string]models.Thought),
		supplements:     make(map[string]models.Supplement),
		photos:          make(map[string]models.PhotoProgress),
		stepEntries:     make(map[string]models.StepEntry),
		cardioEntries:   make(map[string]models.CardioLogEntry),
		shortcuts:       make(map[string]models.ShortcutSetting),
		tabs:            make(map[string]models.TabSetting),
	}
}

func newID() string { return uuid.NewString() }

// ---------- exercises ----------

func (s *MemStorage) ListExercises() ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Exercise, 0, len(s.exercises))
	for _, e := range s.exercises {
		out = append(out, e)
	}
	sortExercises(out)
	return out, nil
}

func (s *MemStorage) ListExercisesByCategory(category string) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Exercise, 0)
	for _, e := range s.exercises {
		if e.Category == category {
			out = append(out, e)
		}
	}
	sortExercises(out)
	return out, nil
}

func sortExercises(out []models.Exercise) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
}

func (s *MemStorage) GetExercise(id string) (*models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.exercises[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemStorage) CreateExercise(e *models.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = newID()
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	s.exercises[e.ID] = *e
	return nil
}

func (s *MemStorage) UpdateExercise(id string, upd *models.ExerciseUpdate) (*models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.exercises[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	s.exercises[id] = e
	return &e, nil
}

func (s *MemStorage) DeleteExercise(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exercises[id]; !ok {
		return false, nil
	}
	delete(s.exercises, id)
	return true, nil
}

func (s *MemStorage) DeleteExercisesByCategory(category string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.exercises {
		if e.Category == category {
			delete(s.exercises, id)
			n++
		}
	}
	return n, nil
}

// ---------- workout logs ----------

func (s *MemStorage) CreateWorkoutLog(l *models.WorkoutLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = newID()
	l.CreatedAt = time.Now()
	if l.CompletedAt.IsZero() {
		l.CompletedAt = l.CreatedAt
	}
	s.workoutLogs[l.ID] = *l
	return nil
}

func (s *MemStorage) ListWorkoutLogs() ([]models.WorkoutLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WorkoutLog, 0, len(s.workoutLogs))
	for _, l := range s.workoutLogs {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CompletedAt.Equal(out[j].CompletedAt) {
			return out[i].CompletedAt.After(out[j].CompletedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemStorage) LatestWorkoutLog() (*models.WorkoutLog, error) {
	logs, _ := s.ListWorkoutLogs()
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[0], nil
}

// ---------- weight entries ----------

func (s *MemStorage) ListWeightEntries() ([]models.WeightEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WeightEntry, 0, len(s.weightEntries))
	for _, e := range s.weightEntries {
		out = append(out, e)
	}
	sortWeightEntries(out)
	return out, nil
}

func sortWeightEntries(out []models.WeightEntry) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
}

func (s *MemStorage) ListWeightEntriesInRange(start, end time.Time) ([]models.WeightEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WeightEntry, 0)
	for _, e := range s.weightEntries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	sortWeightEntries(out)
	return out, nil
}

func (s *MemStorage) GetWeightEntry(id string) (*models.WeightEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.weightEntries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemStorage) CreateWeightEntry(e *models.WeightEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = newID()
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	s.weightEntries[e.ID] = *e
	return nil
}

func (s *MemStorage) UpdateWeightEntry(id string, upd *models.WeightEntryUpdate) (*models.WeightEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.weightEntries[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	s.weightEntries[id] = e
	return &e, nil
}

func (s *MemStorage) DeleteWeightEntry(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.weightEntries[id]; !ok {
		return false, nil
	}
	delete(s.weightEntries, id)
	return true, nil
}

// ---------- audit ledgers ----------

func (s *MemStorage) CreateWeightAudit(a *models.WeightAudit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = newID()
	a.CreatedAt = time.Now()
	s.weightAudits[a.ID] = *a
	return nil
}

func (s *MemStorage) ListWeightAudits() ([]models.WeightAudit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WeightAudit, 0, len(s.weightAudits))
	for _, a := range s.weightAudits {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemStorage) CreateChangesAudit(a *models.ChangesAudit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = newID()
	a.CreatedAt = time.Now()
	s.changesAudits[a.ID] = *a
	return nil
}

func (s *MemStorage) ListChangesAudits() ([]models.ChangesAudit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChangesAudit, 0, len(s.changesAudits))
	for _, a := range s.changesAudits {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemStorage) CreatePRChangesAudit(a *models.PRChangesAudit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = newID()
	a.CreatedAt = time.Now()
	s.prChangesAudits[a.ID] = *a
	return nil
}

func (s *MemStorage) ListPRChangesAudits() ([]models.PRChangesAudit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PRChangesAudit, 0, len(s.prChangesAudits))
	for _, a := range s.prChangesAudits {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemStorage) MaxExerciseWeightByName(name string) (float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var max float64
	found := false
	for _, e := range s.exercises {
		if e.Name == name {
			if !found || e.Weight > max {
				max = e.Weight
			}
			found = true
		}
	}
	return max, found, nil
}

// ---------- blood entries ----------

func (s *MemStorage) ListBloodEntries() ([]models.BloodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BloodEntry, 0, len(s.bloodEntries))
	for _, e := range s.bloodEntries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemStorage) GetBloodEntry(id string) (*models.BloodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.bloodEntries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemStorage) CreateBloodEntry(e *models.BloodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = newID()
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	s.bloodEntries[e.ID] = *e
	return nil
}

func (s *MemStorage) UpdateBloodEntry(id string, upd *models.BloodEntryUpdate) (*models.BloodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.bloodEntries[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	s.bloodEntries[id] = e
	return &e, nil
}

func (s *MemStorage) DeleteBloodEntry(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bloodEntries[id]; !ok {
		return false, nil
	}
	delete(s.bloodEntries, id)
	return true, nil
}

// ---------- personal records ----------

func (s *MemStorage) ListPersonalRecords() ([]models.PersonalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PersonalRecord, 0, len(s.personalRecords))
	for _, r := range s.personalRecords {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemStorage) GetPersonalRecord(id string) (*models.PersonalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.personalRecords[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *MemStorage) CreatePersonalRecord(r *models.PersonalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = newID()
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now
	s.personalRecords[r.ID] = *r
	return nil
}

func (s *MemStorage) UpdatePersonalRecord(id string, upd *models.PersonalRecordUpdate) (*models.PersonalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.personalRecords[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&r)
	r.UpdatedAt = time.Now()
	s.personalRecords[id] = r
	return &r, nil
}

func (s *MemStorage) DeletePersonalRecord(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.personalRecords[id]; !ok {
		return false, nil
	}
	delete(s.personalRecords, id)
	return true, nil
}

// ---------- quotes ----------

func (s *MemStorage) ListQuotes() ([]models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		out = append(out, q)
	}
	sortByCreatedDescQuotes(out)
	return out, nil
}

func sortByCreatedDescQuotes(out []models.Quote) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
}

func (s *MemStorage) ListActiveQuotes() ([]models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Quote, 0)
	for _, q := range s.quotes {
		if q.IsActive == 1 {
			out = append(out, q)
		}
	}
	sortByCreatedDescQuotes(out)
	return out, nil
}

func (s *MemStorage) RandomActiveQuote() (*models.Quote, error) {
	active, _ := s.ListActiveQuotes()
	if len(active) == 0 {
		return nil, nil
	}
	q := active[rand.Intn(len(active))]
	return &q, nil
}

func (s *MemStorage) GetQuote(id string) (*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (s *MemStorage) CreateQuote(q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = newID()
	now := time.Now()
	q.CreatedAt, q.UpdatedAt = now, now
	s.quotes[q.ID] = *q
	return nil
}

func (s *MemStorage) UpdateQuote(id string, upd *models.QuoteUpdate) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&q)
	q.UpdatedAt = time.Now()
	s.quotes[id] = q
	return &q, nil
}

func (s *MemStorage) DeleteQuote(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[id]; !ok {
		return false, nil
	}
	delete(s.quotes, id)
	return true, nil
}

// ---------- affirmations ----------

func (s *MemStorage) ListAffirmations() ([]models.Affirmation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Affirmation, 0, len(s.affirmations))
	for _, a := range s.affirmations {
		out = append(out, a)
	}
	sortAffirmations(out)
	return out, nil
}

func sortAffirmations(out []models.Affirmation) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
}

func (s *MemStorage) ListActiveAffirmations() ([]models.Affirmation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Affirmation, 0)
	for _, a := range s.affirmations {
		if a.IsActive == 1 {
			out = append(out, a)
		}
	}
	sortAffirmations(out)
	return out, nil
}

func (s *MemStorage) GetAffirmation(id string) (*models.Affirmation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.affirmations[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *MemStorage) CreateAffirmation(a *models.Affirmation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = newID()
	now := time.Now()
	a.CreatedAt, a.UpdatedAt = now, now
	s.affirmations[a.ID] = *a
	return nil
}

func (s *MemStorage) UpdateAffirmation(id string, upd *models.AffirmationUpdate) (*models.Affirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.affirmations[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&a)
	a.UpdatedAt = time.Now()
	s.affirmations[id] = a
	return &a, nil
}

func (s *MemStorage) DeleteAffirmation(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.affirmations[id]; !ok {
		return false, nil
	}
	delete(s.affirmations, id)
	return true, nil
}

// ---------- thoughts ----------

func (s *MemStorage) ListThoughts() ([]models.Thought, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Thought, 0, len(s.thoughts))
	for _, t := range s.thoughts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemStorage) GetThought(id string) (*models.Thought, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.thoughts[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *MemStorage) CreateThought(t *models.Thought) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = newID()
	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now
	s.thoughts[t.ID] = *t
	return nil
}

func (s *MemStorage) UpdateThought(id string, upd *models.ThoughtUpdate) (*models.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.thoughts[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&t)
	t.UpdatedAt = time.Now()
	s.thoughts[id] = t
	return &t, nil
}

func (s *MemStorage) DeleteThought(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.thoughts[id]; !ok {
		return false, nil
	}
	delete(s.thoughts, id)
	return true, nil
}

// ---------- supplements ----------

func (s *MemStorage) ListSupplements() ([]models.Supplement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Supplement, 0, len(s.supplements))
	for _, sp := range s.supplements {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemStorage) GetSupplement(id string) (*models.Supplement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.supplements[id]
	if !ok {
		return nil, nil
	}
	return &sp, nil
}

func (s *MemStorage) CreateSupplement(sp *models.Supplement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp.ID = newID()
	now := time.Now()
	sp.CreatedAt, sp.UpdatedAt = now, now
	s.supplements[sp.ID] = *sp
	return nil
}

func (s *MemStorage) UpdateSupplement(id string, upd *models.SupplementUpdate) (*models.Supplement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.supplements[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&sp)
	sp.UpdatedAt = time.Now()
	s.supplements[id] = sp
	return &sp, nil
}

func (s *MemStorage) DeleteSupplement(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.supplements[id]; !ok {
		return false, nil
	}
	delete(s.supplements, id)
	return true, nil
}

// ---------- progress photos ----------

func (s *MemStorage) ListPhotoProgress() ([]models.PhotoProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PhotoProgress, 0, len(s.photos))
	for _, p := range s.photos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemStorage) GetPhotoProgress(id string) (*models.PhotoProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.photos[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *MemStorage) CreatePhotoProgress(p *models.PhotoProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = newID()
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	s.photos[p.ID] = *p
	return nil
}

func (s *MemStorage) UpdatePhotoProgress(id string, upd *models.PhotoProgressUpdate) (*models.PhotoProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.photos[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&p)
	p.UpdatedAt = time.Now()
	s.photos[id] = p
	return &p, nil
}

func (s *MemStorage) DeletePhotoProgress(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.photos[id]; !ok {
		return false, nil
	}
	delete(s.photos, id)
	return true, nil
}

// ---------- step entries ----------

func (s *MemStorage) ListStepEntries() ([]models.StepEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StepEntry, 0, len(s.stepEntries))
	for _, e := range s.stepEntries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemStorage) GetStepEntry(id string) (*models.StepEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.stepEntries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemStorage) CreateStepEntry(e *models.StepEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = newID()
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	s.stepEntries[e.ID] = *e
	return nil
}

func (s *MemStorage) UpdateStepEntry(id string, upd *models.StepEntryUpdate) (*models.StepEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.stepEntries[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	s.stepEntries[id] = e
	return &e, nil
}

func (s *MemStorage) DeleteStepEntry(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stepEntries[id]; !ok {
		return false, nil
	}
	delete(s.stepEntries, id)
	return true, nil
}

// ---------- cardio log entries ----------

func (s *MemStorage) ListCardioLogEntries() ([]models.CardioLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CardioLogEntry, 0, len(s.cardioEntries))
	for _, e := range s.cardioEntries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemStorage) GetCardioLogEntry(id string) (*models.CardioLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.cardioEntries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemStorage) CreateCardioLogEntry(e *models.CardioLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = newID()
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	s.cardioEntries[e.ID] = *e
	return nil
}

func (s *MemStorage) UpdateCardioLogEntry(id string, upd *models.CardioLogEntryUpdate) (*models.CardioLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.cardioEntries[id]
	if !ok {
		return nil, nil
	}
	upd.Apply(&e)
	e.UpdatedAt = time.Now()
	s.cardioEntries[id] = e
	return &e, nil
}

func (s *MemStorage) DeleteCardioLogEntry(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cardioEntries[id]; !ok {
		return false, nil
	}
	delete(s.cardioEntries, id)
	return true, nil
}

// ---------- navigation settings ----------

func (s *MemStorage) ListShortcutSettings() ([]models.ShortcutSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ShortcutSetting, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (s *MemStorage) CreateShortcutSetting(sc *models.ShortcutSetting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc.ID = newID()
	now := time.Now()
	sc.CreatedAt, sc.UpdatedAt = now, now
	s.shortcuts[sc.ID] = *sc
	return nil
}

func (s *MemStorage) UpdateShortcutSetting(id string, upd *models.NavSettingUpdate) (*models.ShortcutSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.shortcuts[id]
	if !ok {
		return nil, nil
	}
	upd.ApplyShortcut(&sc)
	sc.UpdatedAt = time.Now()
	s.shortcuts[id] = sc
	return &sc, nil
}

func (s *MemStorage) ListTabSettings() ([]models.TabSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TabSetting, 0, len(s.tabs))
	for _, t := range s.tabs {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (s *MemStorage) CreateTabSetting(t *models.TabSetting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = newID()
	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now
	s.tabs[t.ID] = *t
	return nil
}

func (s *MemStorage) UpdateTabSetting(id string, upd *models.NavSettingUpdate) (*models.TabSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tabs[id]
	if !ok {
		return nil, nil
	}
	upd.ApplyTab(&t)
	t.UpdatedAt = time.Now()
	s.tabs[id] = t
	return &t, nil
}

// ---------- user settings ----------

func (s *MemStorage) GetUserSettings() (*models.UserSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userSettings == nil {
		now := time.Now()
		s.userSettings = &models.UserSettings{
			ID:           newID(),
			WeightUnit:   "lbs",
			DistanceUnit: "miles",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	out := *s.userSettings
	return &out, nil
}

func (s *MemStorage) UpdateUserSettings(upd *models.UserSettingsUpdate) (*models.UserSettings, error) {
	if _, err := s.GetUserSettings(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	upd.Apply(s.userSettings)
	s.userSettings.UpdatedAt = time.Now()
	out := *s.userSettings
	return &out, nil
}
