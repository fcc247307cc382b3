// Package cloud exports ray samples as point clouds for inspection in PCD
// viewers.
package cloud

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/raytracer/mat"
)

// raySamples is a random accessor over the positions of every ray at every
// parameter: index i is rays[i/len(ts)].At(ts[i%len(ts)]).
type raySamples struct {
	rays []mat.Ray
	ts   []float64
}

var _ pc.Vec3RandomAccessor = (*raySamples)(nil)

func (s *raySamples) Len() int {
	return len(s.rays) * len(s.ts)
}

func (s *raySamples) Vec3At(i int) pcmat.Vec3 {
	n := len(s.ts)
	p := s.rays[i/n].At(s.ts[i%n])
	return Vec3(p.Vec3D())
}

// Vec3 converts v into the single precision point cloud layout.
func Vec3(v mat.Vec3D) pcmat.Vec3 {
	return pcmat.Vec3(v.Float32())
}

// Samples returns the positions of every ray at every parameter in ts.
func Samples(rays []mat.Ray, ts []float64) pc.Vec3RandomAccessor {
	return &raySamples{rays: rays, ts: ts}
}

func newXYZ(n int) *pc.PointCloud {
	return &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z"},
			Size:      []int{4, 4, 4},
			Type:      []string{"F", "F", "F"},
			Count:     []int{1, 1, 1},
			Width:     n,
			Height:    1,
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: n,
		Data:   make([]byte, n*4*3),
	}
}

// FromRays builds an x/y/z point cloud from Samples(rays, ts).
func FromRays(rays []mat.Ray, ts []float64) (*pc.PointCloud, error) {
	ra := Samples(rays, ts)
	pp := newXYZ(ra.Len())
	if ra.Len() == 0 {
		return pp, nil
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for i := 0; i < ra.Len(); i++ {
		it.SetVec3(ra.Vec3At(i))
		it.Incr()
	}
	return pp, nil
}

var ErrEmpty = errors.New("no point")

// Bounds returns the axis aligned bounding box of pp.
func Bounds(pp *pc.PointCloud) (mat.Vec3D, mat.Vec3D, error) {
	if pp.Points == 0 {
		return mat.Vec3D{}, mat.Vec3D{}, ErrEmpty
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return mat.Vec3D{}, mat.Vec3D{}, err
	}
	min, max, err := pc.MinMaxVec3(it)
	if err != nil {
		return mat.Vec3D{}, mat.Vec3D{}, err
	}
	return mat.Vec3F(min).Float64(), mat.Vec3F(max).Float64(), nil
}

// Write encodes pp in PCD format.
func Write(w io.Writer, pp *pc.PointCloud) error {
	if err := pc.Marshal(pp, w); err != nil {
		return fmt.Errorf("writing point cloud: %w", err)
	}
	return nil
}

// WriteFile writes pp to path in PCD format. Like ppm.WriteFile, the data
// goes to a temporary file in the same directory which then replaces path.
func WriteFile(path string, pp *pc.PointCloud) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Write(bw, pp); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing point cloud: %w", err)
	}
	if err := f.Chmod(0644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Read decodes a PCD point cloud.
func Read(r io.Reader) (*pc.PointCloud, error) {
	return pc.Unmarshal(r)
}
