package entry

import (
	"errors"
	"strings"

	"github.com/wortkiste/core/internal/models"
	"github.com/wortkiste/core/internal/modules/morphology"
	"gorm.io/gorm"
)

// AlternativesPurger removes stored alternatives for a term. Satisfied by
// the alternatives store; deleting an entry takes its alternatives with it.
type AlternativesPurger interface {
	DeleteByItem(item string) error
}

type Service struct {
	db     *gorm.DB
	purger AlternativesPurger
}

func NewService(db *gorm.DB, purger AlternativesPurger) *Service {
	return &Service{db: db, purger: purger}
}

// List returns entries ordered by term. A non-empty q filters by substring
// match on term or definition.
func (s *Service) List(q string) ([]models.EntryModel, error) {
	tx := s.db.Model(&models.EntryModel{}).Order("term ASC")
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("term LIKE ? OR definition LIKE ?", like, like)
	}
	var entries []models.EntryModel
	err := tx.Find(&entries).Error
	return entries, err
}

func (s *Service) GetByID(id string) (*models.EntryModel, error) {
	var e models.EntryModel
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *Service) Create(dto *entryDTO) (*models.EntryModel, error) {
	e, err := fromDTO(dto)
	if err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(e.Term, ""); err != nil {
		return nil, err
	}
	if err := s.db.Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces all fields of the entry. Partial updates are not
// supported; callers send the full edited record.
func (s *Service) Update(id string, dto *entryDTO) (*models.EntryModel, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	next, err := fromDTO(dto)
	if err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(next.Term, id); err != nil {
		return nil, err
	}

	existing.Term = next.Term
	existing.Definition = next.Definition
	existing.Example = next.Example
	existing.Synonyms = next.Synonyms
	existing.PartOfSpeech = next.PartOfSpeech
	existing.Article = next.Article

	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the entry and purges any alternatives generated for its
// term.
func (s *Service) Delete(id string) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.EntryModel{}, "id = ?", id).Error; err != nil {
		return err
	}
	if s.purger != nil {
		return s.purger.DeleteByItem(existing.Term)
	}
	return nil
}

// fromDTO trims and validates the incoming fields, including the
// noun/article dependency. Whitespace-only term or definition slips past
// gin's required binding, so emptiness is checked on the trimmed values.
func fromDTO(dto *entryDTO) (*models.EntryModel, error) {
	term := strings.TrimSpace(dto.Term)
	definition := strings.TrimSpace(dto.Definition)
	if term == "" || definition == "" {
		return nil, ErrMissingFields
	}

	pos, article, err := morphology.Validate(dto.PartOfSpeech, dto.Article)
	if err != nil {
		return nil, err
	}

	if morphology.IsNoun(pos) {
		term = morphology.CapitalizeFirst(term)
	}

	return &models.EntryModel{
		Term:         term,
		Definition:   definition,
		Example:      strings.TrimSpace(dto.Example),
		Synonyms:     strings.TrimSpace(dto.Synonyms),
		PartOfSpeech: pos,
		Article:      article,
	}, nil
}

// checkDuplicate runs before the insert. The unique index on term is the
// backstop; this check exists to produce a friendly conflict error.
func (s *Service) checkDuplicate(term, excludeID string) error {
	tx := s.db.Model(&models.EntryModel{}).Where("term = ?", term)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateTerm
	}
	return nil
}
