package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/meshtk/crease"
	"github.com/meshtk/crease/export"
	"github.com/meshtk/crease/meshio"
	"github.com/meshtk/crease/render"
	"github.com/spf13/cobra"
)

var (
	analyzeThreshold float64
	analyzeOutput    string
	analyzeFigures   string
	analyzeWorkers   int
	analyzeNoFigures bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file or directory]",
	Short: "Detect sharp edges and partition smooth regions",
	Long: `Analyze a mesh file or every mesh in a directory tree. For each mesh the
command writes per-edge and per-region CSV files plus a JSON statistics
summary under the output directory, and heatmap/region/histogram images
under the figures directory. Batch runs process meshes concurrently;
each mesh is analyzed independently.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64VarP(&analyzeThreshold, "threshold", "t", crease.DefaultThreshold, "Dihedral angle threshold in degrees")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "output", "Directory for CSV/JSON outputs")
	analyzeCmd.Flags().StringVarP(&analyzeFigures, "figures", "f", "figures", "Directory for figure outputs")
	analyzeCmd.Flags().IntVarP(&analyzeWorkers, "workers", "w", runtime.NumCPU(), "Concurrent meshes in batch mode")
	analyzeCmd.Flags().BoolVar(&analyzeNoFigures, "no-figures", false, "Skip figure generation")
}

// meshResult is one row of the batch processing summary.
type meshResult struct {
	MeshName         string `json:"mesh_name"`
	NumVertices      int    `json:"num_vertices"`
	NumFaces         int    `json:"num_faces"`
	NumInteriorEdges int    `json:"num_interior_edges"`
	NumSharpEdges    int    `json:"num_sharp_edges"`
	NumRegions       int    `json:"num_regions"`
	OutputDir        string `json:"output_dir"`
	FiguresDir       string `json:"figures_dir"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	files, err := collectMeshFiles(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no mesh files found in %q", args[0])
	}
	if analyzeWorkers < 1 {
		analyzeWorkers = 1
	}
	cmd.Printf("Found %d mesh file(s) to process.\n", len(files))
	cmd.Printf("Dihedral angle threshold: %g degrees\n", analyzeThreshold)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []meshResult
		failed  int
	)
	jobs := make(chan string)
	for w := 0; w < analyzeWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res, err := processMesh(path)
				mu.Lock()
				if err != nil {
					failed++
					cmd.PrintErrf("%s: %v\n", path, err)
				} else {
					results = append(results, res)
					cmd.Printf("%s: %d faces, %d sharp edges, %d regions\n",
						res.MeshName, res.NumFaces, res.NumSharpEdges, res.NumRegions)
				}
				mu.Unlock()
			}
		}()
	}
	for _, path := range files {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].MeshName < results[j].MeshName })
	if err := writeSummary(filepath.Join(analyzeOutput, "processing_summary.json"), results); err != nil {
		return err
	}
	cmd.Printf("Processed %d mesh(es), %d failed. Summary saved to %s\n",
		len(results), failed, filepath.Join(analyzeOutput, "processing_summary.json"))
	if failed > 0 {
		return fmt.Errorf("%d mesh(es) failed", failed)
	}
	return nil
}

// processMesh runs the whole pipeline on one file and writes all its
// artifacts. Independent of every other mesh, safe to run concurrently.
func processMesh(path string) (meshResult, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m, err := meshio.ReadFile(path)
	if err != nil {
		return meshResult{}, err
	}
	a, err := crease.Analyze(m, analyzeThreshold)
	if err != nil {
		return meshResult{}, err
	}

	outDir := filepath.Join(analyzeOutput, name)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return meshResult{}, err
	}
	if err := writeEdges(filepath.Join(outDir, name+"_sharp_edges.csv"), a); err != nil {
		return meshResult{}, err
	}
	if err := writeRegions(filepath.Join(outDir, name+"_regions.csv"), a, m); err != nil {
		return meshResult{}, err
	}
	if err := writeStats(filepath.Join(outDir, name+"_statistics.json"), name, m, a); err != nil {
		return meshResult{}, err
	}

	figDir := filepath.Join(analyzeFigures, name)
	if !analyzeNoFigures {
		if err := os.MkdirAll(figDir, 0o755); err != nil {
			return meshResult{}, err
		}
		if err := render.HeatmapPNG(filepath.Join(figDir, name+"_dihedral_heatmap.png"), m, a, render.IsometricView); err != nil {
			return meshResult{}, err
		}
		if err := render.HeatmapFourViews(filepath.Join(figDir, name+"_dihedral_heatmap_4view.png"), m, a); err != nil {
			return meshResult{}, err
		}
		if err := render.RegionPNG(filepath.Join(figDir, name+"_regions.png"), m, a, render.IsometricView); err != nil {
			return meshResult{}, err
		}
		if err := render.Histogram(filepath.Join(figDir, name+"_dihedral_histogram.png"), a); err != nil {
			return meshResult{}, err
		}
	}

	return meshResult{
		MeshName:         name,
		NumVertices:      m.NumVertices(),
		NumFaces:         m.NumTriangles(),
		NumInteriorEdges: a.InteriorEdges(),
		NumSharpEdges:    a.SharpCount(),
		NumRegions:       a.RegionCount,
		OutputDir:        outDir,
		FiguresDir:       figDir,
	}, nil
}

// collectMeshFiles returns path itself for a mesh file, or every
// .obj/.stl file under it for a directory.
func collectMeshFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if !isMeshFile(path) {
			return nil, fmt.Errorf("%q: %w", path, meshio.ErrUnsupportedFormat)
		}
		return []string{path}, nil
	}
	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isMeshFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func isMeshFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj", ".stl":
		return true
	}
	return false
}

func writeEdges(path string, a *crease.Analysis) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return export.WriteEdgesCSV(fp, a)
}

func writeRegions(path string, a *crease.Analysis, m crease.Mesh) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return export.WriteRegionsCSV(fp, a, m)
}

func writeStats(path, name string, m crease.Mesh, a *crease.Analysis) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return export.WriteStatsJSON(fp, name, m, a)
}

func writeSummary(path string, results []meshResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
