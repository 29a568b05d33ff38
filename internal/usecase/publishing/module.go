// Package publishing — сценарии генератора: сгенерировать записи и отправить их в брокер
// пачками или поштучно, посчитать итог запуска.
package publishing

import (
	"log/slog"
	"time"

	"productCatalog/internal/ports"
)

// Config — топики и параллелизм. Переменные: GENERATOR_PUBLISH_*.
type Config struct {
	ProductsTopic  string `split_words:"true" default:"create.products"`
	LanguagesTopic string `split_words:"true" default:"create.productsLanguage"`
	Count          int    `split_words:"true" default:"10"`
	Concurrency    int    `split_words:"true" default:"8"` // одновременных отправок в PublishEach
}

// UseCase связывает генератор, издателя и необязательный журнал запусков.
type UseCase struct {
	pub  ports.IPublisher
	gen  ports.IRecordGenerator
	sink ports.IRunSink
	cfg  Config
	log  *slog.Logger
	now  func() time.Time
}

// New создаёт use case публикации. sink может быть nil.
func New(pub ports.IPublisher, gen ports.IRecordGenerator, sink ports.IRunSink, cfg Config, log *slog.Logger) *UseCase {
	if cfg.ProductsTopic == "" {
		cfg.ProductsTopic = "create.products"
	}
	if cfg.LanguagesTopic == "" {
		cfg.LanguagesTopic = "create.productsLanguage"
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &UseCase{pub: pub, gen: gen, sink: sink, cfg: cfg, log: log, now: time.Now}
}
