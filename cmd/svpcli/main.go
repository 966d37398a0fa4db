// Command svpcli generates or loads an integer lattice basis and runs
// GSO + Gauss Sieve over it, printing the sorted short-vector list and
// (optionally) a Gaussian-heuristic prediction and a GSO norm-profile
// plot.
package main

import (
	"crypto/rand"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/big"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"

	"github.com/tacotaha/svp/lattice"
	"github.com/tacotaha/svp/numeric"
	"github.com/tacotaha/svp/randsrc"
	"github.com/tacotaha/svp/sieve"
	"github.com/tacotaha/svp/vector"
)

func usage() {
	fmt.Println(`usage: svpcli <qary|random|run> [options]

Subcommands:
  qary     Generate a q-ary basis [[q*I_m, A],[0, I_n]] and write it as JSON
           Flags:
             -n   <int>     dimension n (default 10)
             -m   <int>     dimension m (default 10)
             -q   <int>     modulus q (default 131)
             -out <path>    output file (default basis.json)

  random   Generate a random square basis with entries in [-100,100]
           Flags:
             -rank <int>    basis rank (default 10)
             -out  <path>   output file (default basis.json)

  run      Run GSO + Gauss Sieve over a basis
           Flags:
             -in    <path>   basis JSON file (required)
             -t     <float>  sampler rejection-tail factor (default ln(rank))
             -seed  <int>    RNG seed (default 1)
             -plot  <path>   write an HTML GSO norm profile to this path`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "qary":
		runQary(os.Args[2:])
	case "random":
		runRandom(os.Args[2:])
	case "run":
		runSieve(os.Args[2:])
	default:
		usage()
	}
}

func runQary(args []string) {
	fs := flag.NewFlagSet("qary", flag.ExitOnError)
	n := fs.Int("n", 10, "dimension n")
	m := fs.Int("m", 10, "dimension m")
	q := fs.Int64("q", 131, "modulus q")
	out := fs.String("out", "basis.json", "output file")
	fs.Parse(args)

	basis := genBasis(*n, *m, big.NewInt(*q))
	writeBasis(*out, basis)
	fmt.Printf("wrote %d x %d q-ary basis to %s\n", *n+*m, *n+*m, *out)
}

func runRandom(args []string) {
	fs := flag.NewFlagSet("random", flag.ExitOnError)
	rank := fs.Int("rank", 10, "basis rank")
	out := fs.String("out", "basis.json", "output file")
	fs.Parse(args)

	basis := genRandomBasis(*rank)
	writeBasis(*out, basis)
	fmt.Printf("wrote %d x %d random basis to %s\n", *rank, *rank, *out)
}

func runSieve(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	in := fs.String("in", "", "basis JSON file (required)")
	t := fs.Float64("t", 0, "sampler rejection-tail factor (default ln(rank))")
	seed := fs.Int64("seed", 1, "RNG seed")
	plotPath := fs.String("plot", "", "optional HTML GSO norm profile output path")
	fs.Parse(args)

	if *in == "" {
		log.Fatal("run: -in is required")
	}
	rows := readBasis(*in)
	rank := len(rows)
	if rank == 0 {
		log.Fatal("run: empty basis")
	}
	tail := *t
	if tail <= 0 {
		tail = math.Log(float64(rank))
	}

	reg := numeric.Machine()
	basisVecs := make([]vector.Vector[int64], rank)
	for i, r := range rows {
		basisVecs[i] = vector.New(r)
	}
	l := lattice.Lattice[int64]{Basis: basisVecs}

	gs := lattice.GSO(reg, l)
	printGaussianHeuristic(rows, rank)

	if *plotPath != "" {
		writeProfilePlot(*plotPath, gs)
	}

	g := sieve.New(reg, l, tail, randsrc.NewSeeded(*seed))
	res := g.Sieve()

	fmt.Printf("sieve produced %d vectors\n", len(res))
	const shown = 10
	for i, v := range res {
		if i >= shown {
			fmt.Printf("... (%d more)\n", len(res)-shown)
			break
		}
		fmt.Printf("%3d: norm=%d vec=%v\n", i, *v.Norm, v.Vec)
	}
}

// genBasis builds a q-ary lattice basis [[q*I_m, A],[0, I_n]] with A's
// entries drawn uniformly from [0, q).
func genBasis(n, m int, q *big.Int) [][]int64 {
	size := m + n
	basis := make([][]int64, size)
	for i := range basis {
		basis[i] = make([]int64, size)
	}
	for i := 0; i < m; i++ {
		basis[i][i] = q.Int64()
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v, _ := rand.Int(rand.Reader, q)
			basis[i][m+j] = v.Int64()
		}
	}
	for i := 0; i < n; i++ {
		basis[m+i][m+i] = 1
	}
	return basis
}

// genRandomBasis builds a random square basis with entries in [-100,100].
func genRandomBasis(rank int) [][]int64 {
	span := big.NewInt(201)
	basis := make([][]int64, rank)
	for i := range basis {
		basis[i] = make([]int64, rank)
		for j := range basis[i] {
			v, _ := rand.Int(rand.Reader, span)
			basis[i][j] = v.Int64() - 100
		}
	}
	return basis
}

func writeBasis(path string, basis [][]int64) {
	data, err := json.MarshalIndent(basis, "", "  ")
	if err != nil {
		log.Fatalf("marshal basis: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
}

func readBasis(path string) [][]int64 {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	var rows [][]int64
	if err := json.Unmarshal(data, &rows); err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

// printGaussianHeuristic predicts the shortest-vector norm via
// GH(L) = sqrt(n/(2*pi*e)) * vol(L)^(1/n), with vol(L) = sqrt(det(B*B^T))
// computed via gonum's dense matrix support.
func printGaussianHeuristic(rows [][]int64, rank int) {
	b := mat.NewDense(rank, rank, nil)
	for i := 0; i < rank; i++ {
		for j := 0; j < rank; j++ {
			b.Set(i, j, float64(rows[i][j]))
		}
	}
	var bt mat.Dense
	bt.CloneFrom(b.T())

	var bbt mat.Dense
	bbt.Mul(b, &bt)
	det := mat.Det(&bbt)
	vol := math.Sqrt(math.Abs(det))

	coefficient := math.Sqrt(float64(rank) / (2 * math.Pi * math.E))
	gh := coefficient * math.Pow(vol, 1.0/float64(rank))
	fmt.Printf("gaussian heuristic prediction: GH(L) ≈ %.4f (squared ≈ %.4f)\n", gh, gh*gh)
}

// writeProfilePlot renders the log2 GSO norm profile as an interactive
// line chart; a flattening profile is evidence of a well-reduced basis.
func writeProfilePlot(path string, gs []vector.Vector[float64]) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "GSO norm profile (log2)"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "index"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "log2(||gs[i]||^2)"}),
	)

	xs := make([]int, len(gs))
	ys := make([]opts.LineData, len(gs))
	for i, g := range gs {
		xs[i] = i
		ys[i] = opts.LineData{Value: math.Log2(*g.Norm)}
	}
	line.SetXAxis(xs).AddSeries("profile", ys)

	page := components.NewPage().SetPageTitle("Basis Profile")
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render %s: %v", path, err)
	}
	fmt.Printf("wrote GSO profile plot to %s\n", path)
}
