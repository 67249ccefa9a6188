package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title    string       `json:"Title"`
	Width    int          `json:"Width"`
	Height   int          `json:"Height"`
	Periodic bool         `json:"Periodic"`
	Queries  [][2]float64 `json:"Queries"` // Points to locate, each is [x, y]
	Threads  int          `json:"Threads"` // Goroutines for batch queries, 0 uses every CPU
}

func (ip *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate checks the preconditions the mesh constructor does not check itself
func (ip *MeshParameters) Validate() (err error) {
	switch {
	case ip.Width <= 0:
		err = fmt.Errorf("mesh width must be positive, have %d", ip.Width)
	case ip.Height <= 0:
		err = fmt.Errorf("mesh height must be positive, have %d", ip.Height)
	case ip.Threads < 0:
		err = fmt.Errorf("thread count must not be negative, have %d", ip.Threads)
	}
	if err != nil {
		return
	}
	for i, q := range ip.Queries {
		// Written so NaN coordinates fail too
		if !(q[0] >= 0 && q[0] < float64(ip.Width)) || !(q[1] >= 0 && q[1] < float64(ip.Height)) {
			err = fmt.Errorf("query %d at [%g, %g] lies outside the domain [0,%d)x[0,%d)",
				i, q[0], q[1], ip.Width, ip.Height)
			return
		}
	}
	return
}

func (ip *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Width x Height\n", ip.Width, ip.Height)
	fmt.Printf("[%v]\t\t\t= Periodic\n", ip.Periodic)
	fmt.Printf("[%d]\t\t\t\t= Threads\n", ip.Threads)
	for i, q := range ip.Queries {
		fmt.Printf("Queries[%d] = [%g, %g]\n", i, q[0], q[1])
	}
}
