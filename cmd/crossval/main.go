package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/drakos74/crossval"
	"github.com/drakos74/crossval/classifier/forest"
	"github.com/drakos74/crossval/classifier/knear"
	"github.com/drakos74/crossval/classifier/majority"
	"github.com/drakos74/crossval/classifier/neural"
	"github.com/drakos74/crossval/infra/config"
	"github.com/drakos74/crossval/internal/metrics"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type settings struct {
	Data        string          `json:"data"`
	Strategy    string          `json:"strategy"`
	Folds       int             `json:"folds"`
	P           int             `json:"p"`
	Classifier  string          `json:"classifier"`
	Options     crossval.Config `json:"options"`
	MetricsPort int             `json:"metrics_port"`
}

func main() {

	cfg := settings{
		Strategy:   "k-fold",
		Folds:      10,
		P:          2,
		Classifier: "forest",
	}

	path := flag.String("config", "", "path to a json config file")
	data := flag.String("data", "", "path to a csv dataset, label in the last column")
	flag.Parse()

	if *path != "" {
		config.MustLoad(*path, &cfg)
	}
	if *data != "" {
		cfg.Data = *data
	}
	if cfg.Data == "" {
		panic("no dataset given")
	}

	x, y, err := loadSamples(cfg.Data)
	if err != nil {
		panic(fmt.Sprintf("could not load dataset : %+v", err))
	}

	if cfg.MetricsPort > 0 {
		go func() {
			_ = metrics.Serve(cfg.MetricsPort)
		}()
	}

	ctor, err := constructor(cfg.Classifier)
	if err != nil {
		panic(fmt.Sprintf("could not set up classifier : %+v", err))
	}

	var result *crossval.Result
	switch cfg.Strategy {
	case "leave-one-out":
		result, err = crossval.LeaveOneOut(ctor, x, y, cfg.Options)
	case "leave-p-out":
		result, err = crossval.LeavePOut(ctor, x, y, cfg.Options, cfg.P)
	case "k-fold":
		result, err = crossval.KFold(ctor, x, y, cfg.Options, cfg.Folds)
	default:
		panic(fmt.Sprintf("unknown strategy : %s", cfg.Strategy))
	}
	if err != nil {
		panic(fmt.Sprintf("cross-validation failed : %+v", err))
	}

	fmt.Printf("accuracy = %.4f over %d predictions\n", result.Accuracy, result.Predictions)
	fmt.Println(result.Confusion)
}

func constructor(name string) (crossval.Constructor, error) {
	switch name {
	case "majority":
		return majority.New(), nil
	case "forest":
		return forest.New(), nil
	case "neural":
		return neural.New(), nil
	case "knear":
		return knear.New(), nil
	}
	return nil, fmt.Errorf("unknown classifier : %s", name)
}

// loadSamples reads a csv dataset, features first, label in the last column.
func loadSamples(path string) ([][]float64, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}

	x := make([][]float64, 0, len(rows))
	y := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, nil, fmt.Errorf("row %d has no features", i)
		}
		features := make([]float64, len(row)-1)
		for j, cell := range row[:len(row)-1] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d column %d : %w", i, j, err)
			}
			features[j] = v
		}
		x = append(x, features)
		y = append(y, row[len(row)-1])
	}
	return x, y, nil
}
