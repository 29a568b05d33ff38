package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"productCatalog/internal/app"
	"productCatalog/internal/domain"
	"productCatalog/internal/usecase/publishing"
)

type options struct {
	count       int
	concurrency int
	ephemeral   bool
	seed        uint64
}

func main() {
	var (
		opts options
		gen  *app.Generator
	)

	root := &cobra.Command{
		Use:           "generator",
		Short:         "Генерирует фейковые продукты и публикует их в Kafka",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadGeneratorCfg()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if !cmd.Flags().Changed("count") {
				opts.count = cfg.Publish.Count
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Publish.Concurrency = opts.concurrency
			}
			gen = app.NewGenerator(cfg)
			return nil
		},
	}
	root.PersistentFlags().IntVarP(&opts.count, "count", "n", 10, "сколько продуктов сгенерировать")
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "seed фейковых данных (0 — случайный)")

	batch := &cobra.Command{
		Use:   "batch",
		Short: "Две пачки: продукты и локализации, каждая одним запросом",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), gen, opts, func(ctx context.Context, uc *publishing.UseCase) (domain.PublishRun, error) {
				return uc.PublishBatches(ctx, opts.count), nil
			})
		},
	}

	stream := &cobra.Command{
		Use:   "stream",
		Short: "Каждая запись отдельным сообщением через ограниченный пул",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), gen, opts, func(ctx context.Context, uc *publishing.UseCase) (domain.PublishRun, error) {
				return uc.PublishEach(ctx, opts.count, opts.ephemeral)
			})
		},
	}
	stream.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 8, "одновременных отправок")
	stream.Flags().BoolVar(&opts.ephemeral, "ephemeral", false, "разовое соединение на каждое сообщение")

	one := &cobra.Command{
		Use:   "one",
		Short: "Один продукт и его локализации разовыми соединениями",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), gen, opts, func(ctx context.Context, uc *publishing.UseCase) (domain.PublishRun, error) {
				return uc.PublishOne(ctx), nil
			})
		},
	}

	root.AddCommand(batch, stream, one)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("generator failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, gen *app.Generator, opts options, publish func(context.Context, *publishing.UseCase) (domain.PublishRun, error)) error {
	defer func() {
		if err := gen.Close(); err != nil {
			gen.Logger().Warn("close sink", "error", err)
		}
	}()
	uc, err := gen.UseCase(ctx, opts.seed)
	if err != nil {
		return err
	}
	res, err := publish(ctx, uc)
	if err != nil {
		return err
	}
	for _, t := range res.Topics {
		fmt.Printf("%-28s sent=%d failed=%d\n", t.Topic, t.Sent, t.Failed)
	}
	fmt.Printf("run %s (%s) finished in %s\n", res.ID, res.Mode, res.Duration)
	if n := res.Failed(); n > 0 {
		return fmt.Errorf("%d of %d messages failed", n, n+res.Sent())
	}
	return nil
}
