package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/level"
	"github.com/abhisek/hoehwa/internal/llm"
	"github.com/abhisek/hoehwa/internal/session"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one set of questions and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		form, err := formFromFlags(cmd)
		if err != nil {
			return err
		}

		rt, err := newRuntime(cmd.Context(), cmd, "")
		if err != nil {
			return err
		}
		defer rt.Close()

		st := session.NewState()
		ctx := llm.WithPurpose(cmd.Context(), "cli-generate")
		res, err := rt.controller.Submit(ctx, st, form)
		if err != nil {
			return err
		}
		if !res.Result.Valid() {
			return fmt.Errorf("missing required fields: %s", res.Result.MissingLabels())
		}
		if res.Failure != nil {
			return fmt.Errorf("%s %s", res.Failure.Summary(), res.Failure.Message)
		}

		fmt.Fprintln(out, st.Latest.Title())
		fmt.Fprintln(out)
		fmt.Fprintln(out, res.Content.Text)

		if logPath, _ := cmd.Flags().GetString("log"); logPath != "" {
			f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			if _, err := st.Log.WriteTo(f); err != nil {
				return fmt.Errorf("append log: %w", err)
			}
		}
		return nil
	},
}

func formFromFlags(cmd *cobra.Command) (session.Form, error) {
	place, _ := cmd.Flags().GetString("place")
	situation, _ := cmd.Flags().GetString("situation")
	role, _ := cmd.Flags().GetString("role")
	lvlFlag, _ := cmd.Flags().GetString("level")
	langFlag, _ := cmd.Flags().GetString("language")
	qa, _ := cmd.Flags().GetBool("qa")
	formal, _ := cmd.Flags().GetBool("formal")

	lvl, err := level.Parse(lvlFlag)
	if err != nil {
		return session.Form{}, err
	}
	lang, err := convgen.ParseLanguage(langFlag)
	if err != nil {
		return session.Form{}, err
	}
	qt := convgen.QuestionOnly
	if qa {
		qt = convgen.QuestionAndAnswer
	}

	return session.Form{
		Language:     lang,
		QuestionType: qt,
		Formal:       formal,
		Place:        place,
		Situation:    situation,
		Role:         role,
		Level:        lvl,
	}, nil
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(c *cobra.Command) {
	c.Flags().String("place", "", "Where the conversation happens (required)")
	c.Flags().String("situation", "", "What is happening (required)")
	c.Flags().String("role", "", "Role of the questioner (required)")
	c.Flags().String("level", string(level.Basic), "Difficulty: basic, intermediate, advanced or 초급/중급/고급")
	c.Flags().String("language", string(convgen.Chinese), "Target language: zh or en")
	c.Flags().Bool("qa", false, "Generate 5 question/answer pairs instead of 10 questions")
	c.Flags().Bool("formal", false, "Use formal vocabulary and set phrases (Chinese only)")
	c.Flags().String("log", "", "Append the log entry to this file")
}
