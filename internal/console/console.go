// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package console runs the interactive greeting session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"hello-swarm/internal/config"
	"hello-swarm/internal/logging"
	"hello-swarm/pkg/arith"
	"hello-swarm/pkg/calculator"
	"hello-swarm/pkg/hello"
)

// ErrNoInput is returned when the input stream closes before a name is read
var ErrNoInput = errors.New("input closed before a line was read")

// Session holds everything a single greeting run needs
type Session struct {
	Config *config.Config
	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger
	// Args are extra command line arguments echoed after the fixed greeting
	Args []string
	// Calculator records the session's arithmetic; a fresh one is used when nil
	Calculator *calculator.Calculator
}

// Run prints the welcome banner and fixed greeting, prompts for a name,
// greets it, and reports the configured sum and parity checks.
func (s *Session) Run(ctx context.Context) error {
	cfg := s.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	out := s.Out
	if out == nil {
		out = io.Discard
	}
	calc := s.Calculator
	if calc == nil {
		calc = calculator.New("session")
	}
	p := &printer{w: out}

	p.println(cfg.Greeting.Welcome)
	p.println(hello.Greet(cfg.Greeting.DefaultName))
	if len(s.Args) > 0 {
		p.printf("Arguments: %v\n", s.Args)
	}
	p.printf("%s", cfg.Greeting.Prompt)
	if p.err != nil {
		return fmt.Errorf("failed to write output: %w", p.err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := readLine(s.In)
	if err != nil {
		logger.Error("Reading name failed", "error", err)
		return err
	}
	logger.Debug("Name read", "name", name)

	p.println(hello.Greet(name))

	sum := calculator.Add(cfg.Sum.A, cfg.Sum.B)
	calc.Add(float64(cfg.Sum.A), float64(cfg.Sum.B))
	p.printf("%d + %d = %d\n", cfg.Sum.A, cfg.Sum.B, sum)

	for _, n := range cfg.Parity.Checks {
		answer := "No"
		if arith.IsEven(n) {
			answer = "Yes"
		}
		p.printf("Is %d even? %s\n", n, answer)
	}

	if p.err != nil {
		return fmt.Errorf("failed to write output: %w", p.err)
	}

	logger.Debug("Session finished", "calculator", calc.Name(), "history", calc.History())
	return nil
}

// readLine reads a single line and strips trailing whitespace.
// A final line without a newline is accepted.
func readLine(r io.Reader) (string, error) {
	if r == nil {
		return "", ErrNoInput
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	return strings.TrimRightFunc(line, unicode.IsSpace), nil
}

// printer keeps the first write error so output calls can be chained
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(line string) {
	p.printf("%s\n", line)
}
