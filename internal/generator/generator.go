// Package generator собирает синтетические записи каталога: продукты, цены и локализации.
package generator

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"productCatalog/internal/domain"
	"productCatalog/internal/ports"
)

var _ ports.IRecordGenerator = (*Generator)(nil)

const (
	idAlphabet = "0123456789AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz"
	idLength   = 11
)

// Языки, для которых генерируется локализация каждого продукта.
var languageCodes = []string{"en", "th"}

// NewID возвращает 11-символьный идентификатор. Уникальность вероятностная, центрального реестра нет.
func NewID() string {
	return gonanoid.MustGenerate(idAlphabet, idLength)
}

// Option настраивает генератор.
type Option func(*Generator)

// WithSeed фиксирует seed фейковых данных (0 — случайный).
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.faker = gofakeit.New(seed) }
}

// WithClock подменяет источник времени для createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// Generator не потокобезопасен: один экземпляр на одну горутину.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// New создаёт генератор.
func New(opts ...Option) *Generator {
	g := &Generator{faker: gofakeit.New(0), now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate собирает n продуктов; к каждому — по локализации на язык и одна цена в батах.
// Полные локализации возвращаются отдельным списком, в продукт кладётся только их сводка.
func (g *Generator) Generate(n int) domain.Batch {
	if n < 0 {
		n = 0
	}
	batch := domain.Batch{
		Products:  make([]domain.Product, 0, n),
		Languages: make([]domain.SupportingLanguage, 0, n*len(languageCodes)),
	}
	for i := 0; i < n; i++ {
		now := g.timestamp()
		summaries := make([]domain.SupportingLanguage, 0, len(languageCodes))
		for _, code := range languageCodes {
			lang := g.Language(code)
			batch.Languages = append(batch.Languages, lang)
			summaries = append(summaries, lang.Summary())
		}
		batch.Products = append(batch.Products, domain.Product{
			ID:                 NewID(),
			Name:               g.faker.ProductName(),
			Description:        g.faker.ProductDescription(),
			Stock:              g.faker.Number(0, 500),
			Status:             domain.StatusActive,
			CreatedAt:          now,
			UpdatedAt:          now,
			Price:              []domain.Price{g.Price()},
			SupportingLanguage: summaries,
		})
	}
	return batch
}

// Language собирает полную локализацию с одним вложением-картинкой.
func (g *Generator) Language(code string) domain.SupportingLanguage {
	now := g.timestamp()
	return domain.SupportingLanguage{
		ID:           NewID(),
		Name:         g.faker.ProductName(),
		Description:  g.faker.ProductDescription(),
		LanguageCode: code,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
		Attachment: []domain.Attachment{{
			ID:          NewID(),
			Name:        g.faker.ProductName(),
			URL:         g.faker.URL(),
			Type:        "image",
			Status:      domain.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
			RedirectURL: g.faker.URL(),
		}},
	}
}

// Price собирает цену в батах.
func (g *Generator) Price() domain.Price {
	now := g.timestamp()
	return domain.Price{
		ID: NewID(),
		UnitOfMeasure: &domain.UnitOfMeasure{
			Unit:     "THB",
			Amount:   g.faker.Price(0, 1000),
			Currency: "฿",
		},
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// timestamp — текущее время в UTC с точностью до миллисекунд, как в заголовках.
func (g *Generator) timestamp() time.Time {
	return g.now().UTC().Truncate(time.Millisecond)
}
