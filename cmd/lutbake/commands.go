package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gogpu/colorlut"
)

var (
	verbose bool
	log     = logrus.StandardLogger()
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lutbake",
		Short:         "Bake and apply 2D strip color grading LUTs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newIdentityCmd(),
		newConvertCmd(),
		newValidateCmd(),
		newGenerateCmd(),
		newGradeCmd(),
		newCubeCmd(),
	)
	return rootCmd
}

// setupLogging routes command and library logs to one logrus logger.
func setupLogging(out io.Writer) {
	log = newLogrus(out, verbose)
	colorlut.SetLogger(slog.New(newLogrusHandler(log)))
}

func newIdentityCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Write the identity packed table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			t := colorlut.BuildIdentity()
			defer t.Release()
			return saveTable(t, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "identity.png", "output PNG path")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Pack a 256x16 strip into a 256x256 table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			src, err := loadSource(input)
			if err != nil {
				return err
			}
			t, err := colorlut.Convert(src)
			if err != nil {
				return err
			}
			defer t.Release()
			return saveTable(t, output)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "source strip (PNG, BMP, TIFF)")
	cmd.Flags().StringVarP(&output, "output", "o", "packed.png", "output PNG path")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a strip can be packed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := loadSource(input)
			if err != nil {
				return err
			}
			if !colorlut.ValidateSource(src) {
				return &colorlut.ValidationError{Name: src.Name(), Width: src.Width(), Height: src.Height()}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%dx%d)\n", input, src.Width(), src.Height())
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "source strip")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var name, output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a graded source strip",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := lookupStyle(name)
			if err != nil {
				return err
			}
			if err := generateStrip(s).SavePNG(output); err != nil {
				return fmt.Errorf("save %s: %w", output, err)
			}
			log.Infof("wrote %s strip to %s", name, output)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "style", "identity", "grading style: identity, sepia, warm, cool, mono")
	cmd.Flags().StringVarP(&output, "output", "o", "strip.png", "output PNG path")
	return cmd
}

func newGradeCmd() *cobra.Command {
	var input, lut, output string
	var linear bool
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Color grade an image through a strip LUT",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			frame, err := colorlut.LoadImage(input)
			if err != nil {
				return fmt.Errorf("load %s: %w", input, err)
			}
			src, err := loadSource(lut)
			if err != nil {
				return err
			}

			cs := colorlut.ColorSpaceGamma
			if linear {
				cs = colorlut.ColorSpaceLinear
			}
			c := colorlut.NewColorizer(
				colorlut.WithBackend(colorlut.NewSoftwareBackend()),
				colorlut.WithSource(src),
				colorlut.WithColorSpace(cs),
			)
			defer c.Destroy()

			out := frame.Clone()
			if err := c.Render(frame, out); err != nil {
				return err
			}
			if c.State() != colorlut.StateReady {
				// Render passed the frame through unchanged.
				return fmt.Errorf("grade: %s cannot be used as a LUT (state %s)", lut, c.State())
			}
			if err := out.SavePNG(output); err != nil {
				return fmt.Errorf("save %s: %w", output, err)
			}
			log.WithFields(logrus.Fields{"lut": lut, "space": cs}).Infof("graded %s to %s", input, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "image to grade")
	cmd.Flags().StringVarP(&lut, "lut", "l", "", "source strip")
	cmd.Flags().StringVarP(&output, "output", "o", "graded.png", "output PNG path")
	cmd.Flags().BoolVar(&linear, "linear", false, "grade in linear color space")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("lut")
	return cmd
}

func newCubeCmd() *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "cube",
		Short: "Export a strip as an Adobe .cube 3D LUT",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			src, err := loadSource(input)
			if err != nil {
				return err
			}
			f, err := os.Create(output) //nolint:gosec // path is user-provided intentionally
			if err != nil {
				return err
			}
			if err := writeCube(f, src); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			log.Infof("wrote %s", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "source strip")
	cmd.Flags().StringVarP(&output, "output", "o", "lut.cube", "output .cube path")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func loadSource(path string) (*colorlut.Source, error) {
	pm, err := colorlut.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return colorlut.SourceFromImage(path, pm), nil
}

func saveTable(t *colorlut.Table, path string) error {
	pm, err := t.Pixmap()
	if err != nil {
		return err
	}
	if err := pm.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.WithField("id", t.ID()).Infof("wrote %dx%d table to %s", t.Side(), t.Side(), path)
	return nil
}
