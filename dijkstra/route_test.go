package dijkstra_test

import (
	"math"
	"testing"

	"github.com/osm-router/osmprob/dijkstra"
)

func TestRouteTo_Triangle(t *testing.T) {
	route, err := dijkstra.RouteTo(triangle(), "A", "C")
	if err != nil {
		t.Fatal(err)
	}

	if route.Len() != 3 {
		t.Fatalf("route = %v; want 3 vertices", route.Vertices)
	}
	wantV := []string{"A", "B", "C"}
	wantD := []float64{0, 1, 3}
	for i := range wantV {
		if route.Vertices[i] != wantV[i] {
			t.Errorf("Vertices[%d] = %s; want %s", i, route.Vertices[i], wantV[i])
		}
		if route.CumDist[i] != wantD[i] {
			t.Errorf("CumDist[%d] = %g; want %g", i, route.CumDist[i], wantD[i])
		}
	}
	if route.TotalDist() != 3 {
		t.Errorf("TotalDist = %g; want 3", route.TotalDist())
	}
}

func TestRouteTo_CumulativeDistancesMonotone(t *testing.T) {
	arcs := []dijkstra.Arc{
		{From: "A", To: "B", Weight: 2},
		{From: "B", To: "C", Weight: 0.5},
		{From: "C", To: "D", Weight: 1.5},
	}
	route, err := dijkstra.RouteTo(arcs, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < route.Len(); i++ {
		if route.CumDist[i] < route.CumDist[i-1] {
			t.Fatalf("CumDist not monotone: %v", route.CumDist)
		}
	}
	if math.Abs(route.TotalDist()-4.0) > 1e-12 {
		t.Errorf("TotalDist = %g; want 4", route.TotalDist())
	}
}

func TestRouteTo_Unreachable(t *testing.T) {
	arcs := []dijkstra.Arc{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	}
	route, err := dijkstra.RouteTo(arcs, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if route.Len() != 0 {
		t.Errorf("route = %v; want empty", route.Vertices)
	}
	if route.TotalDist() != 0 {
		t.Errorf("TotalDist = %g; want 0", route.TotalDist())
	}
}
