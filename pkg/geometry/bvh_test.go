package geometry

import (
	"math"
	"testing"

	"github.com/piemot/raytracing/pkg/core"
)

func randomSpheres(n int, seed int64) []Hittable {
	sampler := core.NewSeededSampler(seed)
	objects := make([]Hittable, 0, n)
	for i := 0; i < n; i++ {
		center := sampler.Get3D().Multiply(20).Subtract(core.NewVec3(10, 10, 10))
		radius := 0.2 + sampler.Get1D()
		objects = append(objects, NewSphere(center, radius, testMaterial()))
	}
	return objects
}

func TestBVH_MatchesLinearSearch(t *testing.T) {
	objects := randomSpheres(100, 1)
	bvh := NewBVH(objects)
	list := NewHittableList(objects...)

	sampler := core.NewSeededSampler(2)
	for i := 0; i < 500; i++ {
		origin := sampler.Get3D().Multiply(30).Subtract(core.NewVec3(15, 15, 15))
		direction := core.SampleOnUnitSphere(sampler.Get2D())
		ray := core.NewRay(origin, direction)

		bvhHit, bvhIsHit := bvh.Hit(ray, fullRange(), nil)
		listHit, listIsHit := list.Hit(ray, fullRange(), nil)

		if bvhIsHit != listIsHit {
			t.Fatalf("ray %d: bvh hit=%v, linear hit=%v", i, bvhIsHit, listIsHit)
		}
		if bvhIsHit && math.Abs(bvhHit.T-listHit.T) > testEpsilon {
			t.Fatalf("ray %d: bvh t=%v, linear t=%v", i, bvhHit.T, listHit.T)
		}
	}
}

func TestBVH_SingleObject(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial())
	bvh := NewBVH([]Hittable{sphere})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, fullRange(), nil)
	if !isHit {
		t.Fatal("single-object BVH should hit")
	}
	if math.Abs(hit.T-4) > testEpsilon {
		t.Errorf("T = %v, want 4", hit.T)
	}

	if bvh.BoundingBox() != sphere.BoundingBox() {
		t.Error("single-object BVH box should equal the object's box")
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := bvh.Hit(ray, fullRange(), nil); isHit {
		t.Error("empty BVH should never hit")
	}
}

func TestBVH_ReturnsClosestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial())
	far := NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial())
	bvh := NewBVH([]Hittable{far, near})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, fullRange(), nil)
	if !isHit {
		t.Fatal("should hit")
	}
	if math.Abs(hit.T-2) > testEpsilon {
		t.Errorf("T = %v, want 2 (the nearer sphere)", hit.T)
	}
}

func TestBVH_DoesNotMutateInput(t *testing.T) {
	objects := randomSpheres(20, 3)
	first := objects[0]
	last := objects[len(objects)-1]

	NewBVH(objects)

	if objects[0] != first || objects[len(objects)-1] != last {
		t.Error("construction reordered the caller's slice")
	}
}

func TestBVH_BoundingBoxEnclosesAll(t *testing.T) {
	objects := randomSpheres(50, 4)
	bvh := NewBVH(objects)
	box := bvh.BoundingBox()

	for i, obj := range objects {
		b := obj.BoundingBox()
		union := box.Union(b)
		if union != box {
			t.Fatalf("object %d box %v not enclosed by BVH box %v", i, b, box)
		}
	}
}

func TestHittableList_ClosestWins(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial()),
		NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial()),
		NewSphere(core.NewVec3(0, 0, -6), 1, testMaterial()),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, fullRange(), nil)
	if !isHit {
		t.Fatal("should hit")
	}
	if math.Abs(hit.T-2) > testEpsilon {
		t.Errorf("T = %v, want 2", hit.T)
	}
}

func TestBox_Hit(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial())

	// Six faces
	if len(box.Objects) != 6 {
		t.Fatalf("box has %d faces, want 6", len(box.Objects))
	}

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
		wantT   float64
	}{
		{"front face", core.NewRay(core.NewVec3(0.5, 0.5, 2), core.NewVec3(0, 0, -1)), true, 1},
		{"top face", core.NewRay(core.NewVec3(0.5, 3, 0.5), core.NewVec3(0, -1, 0)), true, 2},
		{"misses", core.NewRay(core.NewVec3(2, 2, 2), core.NewVec3(0, 0, -1)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, fullRange(), nil)
			if isHit != tt.wantHit {
				t.Fatalf("Hit = %v, want %v", isHit, tt.wantHit)
			}
			if isHit && math.Abs(hit.T-tt.wantT) > testEpsilon {
				t.Errorf("T = %v, want %v", hit.T, tt.wantT)
			}
		})
	}
}

func TestBox_NormalsFaceOutward(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial())

	// Rays from outside along each axis; every hit should be a front face
	rays := []core.Ray{
		core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0)),
		core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0)),
		core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)),
		core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)),
		core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1)),
	}

	for i, ray := range rays {
		hit, isHit := box.Hit(ray, fullRange(), nil)
		if !isHit {
			t.Fatalf("ray %d should hit the box", i)
		}
		if !hit.FrontFace {
			t.Errorf("ray %d hit a back face", i)
		}
	}
}

func TestHittablePDF_AveragesObjects(t *testing.T) {
	a := NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial())
	b := NewSphere(core.NewVec3(0, 10, 0), 1, testMaterial())
	pdf := NewHittablePDF([]Sampleable{a, b}, core.NewVec3(0, 0, 0), 0)

	toward := core.NewVec3(0, 0, -1)
	want := (a.PDFValue(core.NewVec3(0, 0, 0), toward, 0) + 0) / 2
	if got := pdf.Value(toward); math.Abs(got-want) > testEpsilon {
		t.Errorf("Value = %v, want %v", got, want)
	}
}

func TestHittablePDF_GenerateHitsSomeLight(t *testing.T) {
	lights := []Sampleable{
		NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial()),
		NewParallelogram(core.NewVec3(-1, 5, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), testMaterial()),
	}
	pdf := NewHittablePDF(lights, core.NewVec3(0, 0, 0), 0)
	sampler := core.NewSeededSampler(9)

	for i := 0; i < 500; i++ {
		dir := pdf.Generate(sampler)
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)

		hitAny := false
		for _, light := range lights {
			if _, isHit := light.Hit(ray, fullRange(), nil); isHit {
				hitAny = true
				break
			}
		}
		if !hitAny {
			t.Fatalf("generated direction %v misses every light", dir)
		}
	}
}
