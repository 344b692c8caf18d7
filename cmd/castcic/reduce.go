package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/castcic-lang/castcic/internal/surface"
	"github.com/castcic-lang/castcic/internal/types"
)

func loadFile(path string) (*surface.File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := surface.Load(string(src))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return f, nil
}

func runReduce(ctx context.Context, logger *slog.Logger, variant types.Variant, fuel int, path string) error {
	f, err := loadFile(path)
	if err != nil {
		return err
	}
	m := newMachine(variant).WithConsts(f.Consts)
	result, err := m.ReduceInFueled(ctx, logger, fuel, nil, f.Main)
	if err != nil {
		return fmt.Errorf("reducing %s: %w", path, err)
	}
	fmt.Println(result)
	return nil
}

func runStep(logger *slog.Logger, variant types.Variant, path string) error {
	f, err := loadFile(path)
	if err != nil {
		return err
	}
	m := newMachine(variant).WithConsts(f.Consts)
	result, err := m.Step1(nil, f.Main)
	if err != nil {
		return fmt.Errorf("stepping %s: %w", path, err)
	}
	fmt.Println(result)
	return nil
}
