package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"github.com/dictkit-project/dictkit/internal/codec"
	"github.com/dictkit-project/dictkit/pkg/treedict"
)

// loadTree reads and decodes one document. "-" reads from stdin (JSON
// unless --format says otherwise).
func loadTree(path string) (treedict.Tree, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	c := pickCodec(path)
	tree, err := c.Unmarshal(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", path, c.Name(), err)
	}

	setupLog.Debug().
		Str("file", path).
		Str("codec", c.Name()).
		Str("size", humanize.IBytes(uint64(len(raw)))).
		Msg("Loaded document")
	if debugMode {
		setupLog.Debug().Msg(spew.Sdump(tree))
	}
	return tree, nil
}

// pickCodec honors --format (and the config file) and falls back to the
// file extension.
func pickCodec(path string) codec.Codec {
	name := formatName
	if name == "" {
		name = viper.GetString("format")
	}
	if name != "" {
		if c, ok := codec.ByName(name); ok {
			return c
		}
		setupLog.Warn().Str("format", name).Msg("Unknown format, falling back to file extension")
	}
	return codec.ForPath(path)
}

// writeTree encodes [t] with the output codec and writes it to [w] (or
// to the file at [out] when non-empty), followed by a newline.
func writeTree(w io.Writer, out string, t treedict.Tree) error {
	c := pickCodec(out)
	raw, err := c.Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding as %s: %w", c.Name(), err)
	}
	if out != "" {
		return os.WriteFile(out, append(raw, '\n'), 0o644)
	}
	_, err = fmt.Fprintf(w, "%s\n", raw)
	return err
}
