package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/atlasops/vpcatlas/internal/model"
)

// Artifact names inside the output directory.
const (
	ModelFile   = "network_data.json"
	DiagramFile = "network_diagram.mmd"
	HTMLFile    = "topology.html"
)

// WriteAll persists the full artifact set: the raw model JSON, the
// Mermaid source, and a self-contained HTML page. The directory is
// created if missing.
func WriteAll(m *model.NetworkModel, diagram, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %v", dir, err)
	}
	if err := WriteJSON(m, filepath.Join(dir, ModelFile)); err != nil {
		return err
	}
	if err := WriteMermaid(diagram, filepath.Join(dir, DiagramFile)); err != nil {
		return err
	}
	return WriteHTML(m, diagram, filepath.Join(dir, HTMLFile))
}

// WriteJSON dumps the collected model, re-usable later via `render`.
func WriteJSON(m *model.NetworkModel, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	return model.Encode(f, m)
}

// WriteMermaid writes the diagram source for use with mermaid-cli or
// any markdown renderer.
func WriteMermaid(diagram, path string) error {
	if err := os.WriteFile(path, []byte(diagram), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", path, err)
	}
	return nil
}

type htmlData struct {
	Region    string
	Timestamp string
	VPCCount  int
	Diagram   string
}

// The template is embedded for single-binary portability. Rendering
// happens client-side via the mermaid.js CDN bundle.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>VPCAtlas // Network Topology</title>
    <script type="module">
        import mermaid from 'https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.esm.min.mjs';
        mermaid.initialize({ startOnLoad: true, theme: 'neutral' });
    </script>
    <style>
        body {
            background-color: #030712;
            color: #f8fafc;
            font-family: 'Helvetica Neue', Arial, sans-serif;
            margin: 0;
            padding: 2rem;
        }
        header {
            display: flex;
            justify-content: space-between;
            align-items: baseline;
            border-bottom: 1px solid rgba(255, 255, 255, 0.08);
            margin-bottom: 2rem;
            padding-bottom: 1rem;
        }
        h1 { font-size: 1.6rem; letter-spacing: -0.02em; margin: 0; }
        .meta { color: #94a3b8; font-size: 0.85rem; }
        .panel {
            background: rgba(17, 24, 39, 0.7);
            border: 1px solid rgba(255, 255, 255, 0.08);
            border-radius: 1rem;
            padding: 1.5rem;
            overflow-x: auto;
        }
        pre.mermaid { background: #fff; border-radius: 0.5rem; padding: 1rem; }
    </style>
</head>
<body>
    <header>
        <h1>VPCAtlas &mdash; Network Topology</h1>
        <div class="meta">{{.Region}} &middot; {{.VPCCount}} VPC(s) &middot; collected {{.Timestamp}}</div>
    </header>
    <div class="panel">
        <pre class="mermaid">{{.Diagram}}</pre>
    </div>
</body>
</html>
`

// WriteHTML renders the topology page around the Mermaid source.
func WriteHTML(m *model.NetworkModel, diagram, path string) error {
	t, err := template.New("topology").Parse(htmlTemplate)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	return t.Execute(f, htmlData{
		Region:    m.Region,
		Timestamp: m.Timestamp,
		VPCCount:  len(m.VPCs),
		Diagram:   diagram,
	})
}
