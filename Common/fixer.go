package common

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Fixer rewrites files of unknown encoding as UTF-8 without a BOM.
type Fixer struct {
	Candidates []Candidate
	// Stdout receives the human-readable status lines.
	Stdout io.Writer
	Logger *slog.Logger
	// GuessConfidence is the detector confidence at which a disagreement is logged.
	GuessConfidence int
}

// NewFixer returns a Fixer over the default candidate list.
func NewFixer(stdout io.Writer, logger *slog.Logger, guessConfidence int) *Fixer {
	return &Fixer{
		Candidates:      Candidates(),
		Stdout:          stdout,
		Logger:          logger,
		GuessConfidence: guessConfidence,
	}
}

// Fix decodes inputPath with the first candidate that accepts all of it and
// writes the text to outputPath. An empty outputPath rewrites inputPath.
// Nothing is written when every candidate fails.
func (f *Fixer) Fix(inputPath, outputPath string) (Decoded, error) {
	if outputPath == "" {
		outputPath = inputPath
	}
	logger := f.logger().With("input", inputPath, "output", outputPath)
	out := f.out()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Decoded{}, fmt.Errorf("read %s: %w", inputPath, err)
	}
	logger.Debug("input loaded", "bytes", len(data))

	decoded, selected, err := selectCandidate(data, f.Candidates, func(c Candidate) {
		logger.Debug("candidate rejected", "encoding", c.Name)
	})
	if errors.Is(err, ErrExhausted) {
		fmt.Fprintln(out, "❌ Failed to read file with any encoding!")
		return Decoded{}, err
	}
	fmt.Fprintf(out, "✅ Successfully read with encoding: %s\n", decoded.Encoding)
	checkSelection(logger, data, selected, f.GuessConfidence)

	if err := WriteUTF8(outputPath, decoded.Text); err != nil {
		return Decoded{}, err
	}
	fmt.Fprintf(out, "✅ Written as UTF-8 without BOM: %s\n", outputPath)
	fmt.Fprintf(out, "   Original encoding: %s\n", decoded.Encoding)
	return decoded, nil
}

func (f *Fixer) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *Fixer) out() io.Writer {
	if f.Stdout != nil {
		return f.Stdout
	}
	return io.Discard
}
