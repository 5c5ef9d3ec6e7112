package main

import "context"
import "errors"
import "flag"
import "io/fs"
import "log"
import "os"
import "os/signal"
import "syscall"
import "time"

import "github.com/klauspost/cpuid/v2"

import "github.com/neurlang/smsspam/config"
import "github.com/neurlang/smsspam/datasets/smsspam"
import "github.com/neurlang/smsspam/report"
import "github.com/neurlang/smsspam/trainer"
import "github.com/neurlang/smsspam/vectorizer"

func main() {
	configFile := flag.String("config", "smsspam.yaml", "path to configuration file")
	workers := flag.Int("workers", -1, "folds trained concurrently, 0 uses every logical core")
	folds := flag.Int("folds", 0, "number of cross-validation folds")
	epochs := flag.Int("epochs", 0, "training epochs per fold")
	data := flag.String("data", "", "local smsspamcollection.zip instead of downloading")
	verbose := flag.Bool("v", false, "log per-fold progress")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no configuration at %s, using defaults", *configFile)
		cfg, err = config.LoadConfig("")
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	switch {
	case *workers == 0:
		cfg.Train.Workers = cpuid.CPU.LogicalCores
	case *workers > 0:
		cfg.Train.Workers = *workers
	}
	if *folds != 0 {
		cfg.Train.Folds = *folds
	}
	if *epochs != 0 {
		cfg.Train.Epochs = *epochs
	}
	if *data != "" {
		cfg.Dataset.Path = *data
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	text, err := load(ctx, cfg)
	if err != nil {
		log.Fatalf("load: %v", err)
	}

	dataset, _, err := vectorizer.ParseString(text)
	if err != nil {
		log.Fatalf("vectorize: %v", err)
	}

	console := report.NewConsole(os.Stdout)
	summary := report.NewSummary(dataset)
	console.Dataset(summary)

	opts := cfg.TrainOptions()
	if *verbose {
		opts.SetLogger(os.Stderr)
		console.Hardware(opts.Workers)
	}

	start := time.Now()
	result, err := trainer.CrossValidate(dataset, opts)
	if err != nil {
		log.Fatalf("cross-validate: %v", err)
	}
	summary.SetResult(result, time.Since(start))

	if *verbose {
		console.FoldTable(summary)
	}
	console.Results(summary)
}

func load(ctx context.Context, cfg *config.Config) (string, error) {
	var src smsspam.Source
	if cfg.Dataset.Path != "" {
		src = smsspam.FileSource{Path: cfg.Dataset.Path}
	} else {
		src = smsspam.NewHTTPSource(cfg.Dataset.Timeout)
		if cfg.Redis.Enabled {
			client, err := smsspam.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				log.Printf("archive cache disabled: %v", err)
			} else {
				defer client.Close()
				src = smsspam.NewCachedSource(src, client, cfg.Redis.TTL,
					smsspam.ArchiveValidator(smsspam.ZipArchive{}, cfg.DatasetSource()))
			}
		}
	}
	return smsspam.Load(ctx, src, smsspam.ZipArchive{}, cfg.DatasetSource())
}
