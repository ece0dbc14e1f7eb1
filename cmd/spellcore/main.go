package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/skribent/spellcore"
	"github.com/skribent/spellcore/dictionaries"
	"github.com/ttab/elephantine"
	"github.com/urfave/cli/v3"
)

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("exiting: ",
			elephantine.LogKeyError, err)
		os.Exit(1)
	}

	checkCmd := cli.Command{
		Name:        "check",
		Description: "Checks the spelling of a file, or stdin",
		Action:      runCheck,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dictionary",
				Usage:   "Main dictionary file, the embedded word list is used if unset",
				Sources: cli.EnvVars("DICTIONARY"),
			},
			&cli.StringFlag{
				Name:    "user-dictionary",
				Sources: cli.EnvVars("USER_DICTIONARY"),
			},
			&cli.StringFlag{
				Name:      "file",
				Usage:     "File to check instead of stdin",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:  "suggest",
				Usage: "Include suggestions for misspelled words",
				Value: true,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
	}

	suggestCmd := cli.Command{
		Name:        "suggest",
		Description: "Prints ranked correction suggestions for a word",
		ArgsUsage:   "<word>",
		Action:      runSuggest,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dictionary",
				Sources: cli.EnvVars("DICTIONARY"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
	}

	learnCmd := cli.Command{
		Name:        "learn",
		Description: "Adds words to the user dictionary",
		ArgsUsage:   "<word>...",
		Action:      runLearn,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user-dictionary",
				Required: true,
				Sources:  cli.EnvVars("USER_DICTIONARY"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
	}

	app := cli.Command{
		Name:  "spellcore",
		Usage: "Spellchecking for plain text",
		Commands: []*cli.Command{
			&checkCmd,
			&suggestCmd,
			&learnCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("failed to run application",
			elephantine.LogKeyError, err)
		os.Exit(1)
	}
}

func runCheck(_ context.Context, c *cli.Command) (outErr error) {
	var (
		dictPath = c.String("dictionary")
		userPath = c.String("user-dictionary")
		file     = c.String("file")
		suggest  = c.Bool("suggest")
		logLevel = c.String("log-level")
	)

	logger := elephantine.SetUpLogger(logLevel, os.Stderr)

	checker, err := newChecker(logger, dictPath)
	if err != nil {
		return err
	}

	if userPath != "" {
		err := checker.LoadUserDictionary(userPath)
		if err != nil {
			return fmt.Errorf("load user dictionary: %w", err)
		}
	}

	checker.SetSuggestionsEnabled(suggest)

	var text []byte

	if file != "" {
		text, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
	} else {
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	checker.Check(string(text))

	for _, w := range checker.Misspelled() {
		if checker.SuggestionsEnabled() {
			suggestions := checker.Suggestions(w.Word)
			if len(suggestions) > 0 {
				fmt.Printf("%d-%d\t%s\t(did you mean %s?)\n",
					w.Start, w.End, w.Word,
					strings.Join(suggestions, ", "))

				continue
			}
		}

		fmt.Printf("%d-%d\t%s\n", w.Start, w.End, w.Word)
	}

	logger.Info("finished spellcheck",
		"misspelled_words", len(checker.Misspelled()))

	return nil
}

func runSuggest(_ context.Context, c *cli.Command) error {
	var (
		dictPath = c.String("dictionary")
		logLevel = c.String("log-level")
		word     = c.Args().First()
	)

	if word == "" {
		return errors.New("no word provided")
	}

	logger := elephantine.SetUpLogger(logLevel, os.Stderr)

	checker, err := newChecker(logger, dictPath)
	if err != nil {
		return err
	}

	for _, s := range checker.Suggestions(word) {
		fmt.Println(s)
	}

	return nil
}

func runLearn(_ context.Context, c *cli.Command) error {
	var (
		userPath = c.String("user-dictionary")
		logLevel = c.String("log-level")
		words    = c.Args().Slice()
	)

	if len(words) == 0 {
		return errors.New("no words provided")
	}

	logger := elephantine.SetUpLogger(logLevel, os.Stderr)

	checker, err := spellcore.New(spellcore.Options{
		Logger:     logger,
		Registerer: prometheus.DefaultRegisterer,
	})
	if err != nil {
		return fmt.Errorf("create checker: %w", err)
	}

	err = checker.LoadUserDictionary(userPath)
	if err != nil {
		return fmt.Errorf("load user dictionary: %w", err)
	}

	for _, word := range words {
		checker.Learn(word)
	}

	checker.SaveUserDictionary(userPath)

	return nil
}

// newChecker creates a checker and loads the main dictionary, falling back
// to the embedded word list when no dictionary path was given.
func newChecker(
	logger *slog.Logger, dictPath string,
) (_ *spellcore.Checker, outErr error) {
	checker, err := spellcore.New(spellcore.Options{
		Logger:     logger,
		Registerer: prometheus.DefaultRegisterer,
	})
	if err != nil {
		return nil, fmt.Errorf("create checker: %w", err)
	}

	if dictPath == "" {
		// The engine loads dictionaries from disk, so the embedded
		// word list is staged in a temporary directory first.
		tmpDir, err := os.MkdirTemp("", "spellcore-dicts-*")
		if err != nil {
			return nil, fmt.Errorf("create dictionary directory: %w", err)
		}

		defer func() {
			err := os.RemoveAll(tmpDir)
			if err != nil {
				outErr = errors.Join(outErr, fmt.Errorf(
					"clean up temporary dictionary files: %w", err))
			}
		}()

		data, err := fs.ReadFile(dictionaries.GetFS(), "en.txt")
		if err != nil {
			return nil, fmt.Errorf("read embedded dictionary: %w", err)
		}

		dictPath = filepath.Join(tmpDir, "en.txt")

		err = os.WriteFile(dictPath, data, 0o600)
		if err != nil {
			return nil, fmt.Errorf("copy embedded dictionary: %w", err)
		}
	}

	err = checker.LoadDictionary(dictPath)
	if err != nil {
		return nil, fmt.Errorf("load main dictionary: %w", err)
	}

	return checker, nil
}
