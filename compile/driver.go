package compile

import (
	"bufio"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/diag"
	"github.com/mb0/schemac/emit"
	"github.com/mb0/schemac/log"
	"github.com/mb0/schemac/schema"
)

// Driver orchestrates one full compilation run: load the schema document,
// open both output files, write the fixed preambles, materialise every
// `$ref` definition, then emit the root validator's body (spec.md §2.7,
// §5, §6). Grounded on canner.cc's `process()`.
type Driver struct {
	SchemaPath string
	HdrPath    string
	SrcPath    string
	ClassName  string
	Log        log.Logger
}

// Run executes the compilation and returns the accumulated diagnostics. An
// operational failure - unreadable schema, malformed YAML, a non-map root,
// or an output file that cannot be opened - records a single ERROR and
// aborts before any output is written, per spec.md §7.
func (d *Driver) Run() *diag.List {
	notes := &diag.List{}
	logger := d.Log
	if logger == nil {
		logger = log.New()
	}

	data, err := os.ReadFile(d.SchemaPath)
	if err != nil {
		notes.Error("Failed to load schema file %q: %s.", d.SchemaPath, err)
		return notes
	}
	notes.Info("Loaded schema file %q - %d bytes.", d.SchemaPath, len(data))
	logger.Debug("loaded schema", "path", d.SchemaPath, "bytes", len(data))

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		notes.Error("Loading failed: %s.", err)
		return notes
	}
	if schema.KindOf(&root) != schema.Map {
		notes.Error("Root node must be a map.")
		return notes
	}

	hdrFile, err := os.Create(d.HdrPath)
	if err != nil {
		notes.Error("Failed to open header output file %q: %s.", d.HdrPath, err)
		return notes
	}
	defer hdrFile.Close()
	srcFile, err := os.Create(d.SrcPath)
	if err != nil {
		notes.Error("Failed to open source output file %q: %s.", d.SrcPath, err)
		return notes
	}
	defer srcFile.Close()

	hdrBuf := bufio.NewWriter(hdrFile)
	srcBuf := bufio.NewWriter(srcFile)
	defer hdrBuf.Flush()
	defer srcBuf.Flush()

	hdr := emit.NewSink(hdrBuf)
	impl := emit.NewSink(srcBuf)
	ctx := NewContext(&root, hdr, impl, d.ClassName)

	impl.Write(implPreamble, filepath.Base(d.HdrPath))
	impl.Write(runtimePrelude)

	hdr.Write(hdrPreamble)
	hdr.Write("class %s {\npublic:\n", d.ClassName)
	hdr.Indent()
	hdr.Write("swoc::Errata erratum;\n")
	hdr.Write("bool operator()(YAML::Node const& node);\n\n")
	hdr.Write("struct Definitions {\n")
	hdr.Indent()

	notes.Absorb(MaterializeDefinitions(ctx, &root))

	hdr.Dedent()
	hdr.Write("};\n")
	hdr.Dedent()
	hdr.Write("};\n")

	impl.Write("bool\n%s::operator()(YAML::Node const& node)\n{\n", d.ClassName)
	impl.Indent()
	impl.Write("static constexpr std::string_view name{\"root\"};\n")
	impl.Write("erratum.clear();\n\n")
	notes.Absorb(ValidateNode(ctx, &root, "node"))
	impl.Write("\nreturn erratum.severity() < swoc::Severity::ERROR;\n")
	impl.Dedent()
	impl.Write("}\n")

	if !notes.OK() {
		logger.Warn("compile finished with errors", "schema", d.SchemaPath)
	}
	return notes
}
