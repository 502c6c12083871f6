package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/logger"
	"github.com/vearutop/edrmeta"
	"github.com/vearutop/edrmeta/internal/descfile"
	"golang.org/x/sync/errgroup"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "select":
		err = runSelect(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: edrtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  encode -kind mdcv -master-display 'G(..)B(..)R(..)WP(..)L(..)' [-out mdcv.bin]")
	fmt.Fprintln(os.Stderr, "  encode -kind mdcv -preset p3|bt2020|bt709 -min-nits 0.005 -max-nits 1000 [-out mdcv.bin]")
	fmt.Fprintln(os.Stderr, "  encode -kind clli -max-cll 1000,400 [-out clli.bin]")
	fmt.Fprintln(os.Stderr, "  encode -kind amve -lux 314 -x 0.3127 -y 0.329 [-out amve.bin]")
	fmt.Fprintln(os.Stderr, "  select -in desc.yaml [-ambient-capable] [-out bundle.json]")
	fmt.Fprintln(os.Stderr, "  batch  -out-dir dir [-ambient-capable] [-j 4] desc1.yaml desc2.yaml ...")
	fmt.Fprintln(os.Stderr, "Common flags: -clamp (clamp out of range values instead of failing), -v (verbose)")
}

type common struct {
	clamp   *bool
	verbose *bool
}

func commonFlags(fs *flag.FlagSet) common {
	return common{
		clamp:   fs.Bool("clamp", false, "clamp out of range values instead of failing"),
		verbose: fs.Bool("v", false, "verbose logging"),
	}
}

// setup initializes logging and returns encode options for the parsed flags.
func (c common) setup(name string) []func(o *edrmeta.EncodeOptions) {
	logger.Init(name, false, false, os.Stderr)
	logger.SetFlags(0)
	if *c.verbose {
		logger.SetLevel(1)
	}

	if !*c.clamp {
		return nil
	}

	return []func(o *edrmeta.EncodeOptions){func(o *edrmeta.EncodeOptions) {
		o.Overflow = edrmeta.OverflowClamp
		o.OnClamp = func(field string, value float64, limit uint64) {
			logger.Warningf("clamped %s: %g does not fit [0, %d]", field, value, limit)
		}
	}}
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	kind := fs.String("kind", "", "payload kind: mdcv, clli or amve")
	masterDisplay := fs.String("master-display", "", "x265 master-display string")
	preset := fs.String("preset", "", "mastering display preset: p3, bt2020 or bt709")
	minNits := fs.Float64("min-nits", 0.005, "preset min luminance")
	maxNits := fs.Float64("max-nits", 1000, "preset max luminance")
	maxCLL := fs.String("max-cll", "", "MaxCLL,MaxFALL")
	lux := fs.Float64("lux", 0, "ambient illuminance")
	x := fs.Float64("x", 0.3127, "ambient light chromaticity x")
	y := fs.Float64("y", 0.3290, "ambient light chromaticity y")
	outPath := fs.String("out", "", "write binary payload instead of hex")
	c := commonFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	opts := c.setup("edrtool encode")
	defer logger.Close()

	var (
		payload []byte
		err     error
	)

	switch *kind {
	case "mdcv":
		var m edrmeta.MasteringDisplayMetadata
		m, err = masteringDisplay(*masterDisplay, *preset, *minNits, *maxNits)
		if err != nil {
			return err
		}
		payload, err = edrmeta.EncodeMasteringDisplay(m, opts...)
	case "clli":
		if *maxCLL == "" {
			return errors.New("missing -max-cll")
		}
		var cl edrmeta.ContentLightMetadata
		cl, err = edrmeta.ParseMaxCLL(*maxCLL)
		if err != nil {
			return err
		}
		payload, err = edrmeta.EncodeContentLight(cl, opts...)
	case "amve":
		payload, err = edrmeta.EncodeAmbientViewing(edrmeta.AmbientViewingEnvironment{
			Illuminance: *lux,
			Light:       edrmeta.Chromaticity{X: float32(*x), Y: float32(*y)},
		}, opts...)
	default:
		return fmt.Errorf("unknown kind %q", *kind)
	}
	if err != nil {
		return err
	}

	logger.V(1).Infof("encoded %s payload, %d bytes", *kind, len(payload))

	if *outPath != "" {
		return os.WriteFile(filepath.Clean(*outPath), payload, 0o644)
	}
	fmt.Fprintln(os.Stdout, hex.EncodeToString(payload))

	return nil
}

func masteringDisplay(masterDisplay, preset string, minNits, maxNits float64) (edrmeta.MasteringDisplayMetadata, error) {
	if masterDisplay != "" {
		return edrmeta.ParseMasterDisplay(masterDisplay)
	}

	var m edrmeta.MasteringDisplayMetadata
	switch strings.ToLower(preset) {
	case "p3", "display-p3":
		m = edrmeta.DisplayP3D65(minNits, maxNits)
	case "bt2020", "rec2020":
		m = edrmeta.BT2020D65(minNits, maxNits)
	case "bt709", "rec709":
		m = edrmeta.BT709D65(minNits, maxNits)
	case "":
		return m, errors.New("missing -master-display or -preset")
	default:
		return m, fmt.Errorf("unknown preset %q", preset)
	}

	return m, m.Validate()
}

func runSelect(args []string) error {
	fs := flag.NewFlagSet("select", flag.ContinueOnError)
	inPath := fs.String("in", "", "descriptor YAML")
	ambientCapable := fs.Bool("ambient-capable", false, "presentation layer accepts HLG ambient viewing metadata")
	outPath := fs.String("out", "", "write bundle JSON to file instead of stdout")
	c := commonFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	opts := c.setup("edrtool select")
	defer logger.Close()

	payload, err := selectFile(*inPath, edrmeta.Capabilities{AmbientViewing: *ambientCapable}, opts)
	if err != nil {
		return err
	}

	if *outPath != "" {
		return os.WriteFile(filepath.Clean(*outPath), payload, 0o644)
	}
	_, err = os.Stdout.Write(append(payload, '\n'))

	return err
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	outDir := fs.String("out-dir", "", "directory for bundle JSON files")
	ambientCapable := fs.Bool("ambient-capable", false, "presentation layer accepts HLG ambient viewing metadata")
	jobs := fs.Int("j", 4, "concurrent jobs")
	c := commonFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outDir == "" || fs.NArg() == 0 {
		return errors.New("missing required arguments")
	}
	opts := c.setup("edrtool batch")
	defer logger.Close()

	if err := os.MkdirAll(filepath.Clean(*outDir), 0o755); err != nil {
		return err
	}

	caps := edrmeta.Capabilities{AmbientViewing: *ambientCapable}

	var g errgroup.Group
	g.SetLimit(*jobs)
	for _, in := range fs.Args() {
		in := in
		g.Go(func() error {
			payload, err := selectFile(in, caps, opts)
			if err != nil {
				return err
			}
			base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
			out := filepath.Join(*outDir, base+".json")
			if err := os.WriteFile(out, payload, 0o644); err != nil {
				return err
			}
			logger.V(1).Infof("%s -> %s", in, out)
			return nil
		})
	}

	return g.Wait()
}

func selectFile(path string, caps edrmeta.Capabilities, opts []func(o *edrmeta.EncodeOptions)) ([]byte, error) {
	h, err := descfile.Load(path)
	if err != nil {
		return nil, err
	}

	md, err := edrmeta.SelectMetadata(h, caps, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.V(1).Infof("%s: selected %s", path, md.Kind())

	bundle, err := edrmeta.BuildPayloadBundle(md)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(bundle, "", "  ")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
