// Package solver implements the boundary operation spec.md §6 describes:
// solve(problem, configs) -> SolvedProblem. It resolves a Problem descriptor
// to a CostTable via either the TSPLIB parser (synthetic instances) or the
// routing client (real instances), then runs the GA engine over it.
//
// Everything upstream of this boundary — HTTP routing, request/response
// serialization, persistence, authentication, logging, and configuration
// loading — is an external collaborator and out of scope here.
package solver

import (
	"context"

	"github.com/katalvlaran/tspga/costtable"
	"github.com/katalvlaran/tspga/ga"
	"github.com/katalvlaran/tspga/routing"
	"github.com/katalvlaran/tspga/tsperr"
	"github.com/katalvlaran/tspga/tsplib"
)

// ProblemType mirrors spec.md §6's closed {TSP, ATSP} set. ATSP asymmetry is
// handled transparently by the cost table; no special-casing is needed here.
type ProblemType string

const (
	ProblemTSP  ProblemType = "TSP"
	ProblemATSP ProblemType = "ATSP"
)

// EdgeWeightType mirrors spec.md §6's closed {GEO, EUC_2D, EXPLICIT} set.
type EdgeWeightType string

const (
	EdgeWeightGEO      EdgeWeightType = "GEO"
	EdgeWeightEUC2D    EdgeWeightType = "EUC_2D"
	EdgeWeightEXPLICIT EdgeWeightType = "EXPLICIT"
)

// Problem is the boundary descriptor spec.md §6 defines: a discriminated
// union of a real (routing-backed) instance and a synthetic (file-backed)
// instance, selected by IsRealInstance.
type Problem struct {
	ProblemType    ProblemType
	EdgeWeightType EdgeWeightType
	Dimension      int
	Algorithm      string // currently only "GA" is supported.
	IsRealInstance bool

	// Real-instance fields (IsRealInstance == true).
	APIName         string // must be "neshan".
	CoordinatesFile string // path to N lines of "lat,long".

	// Synthetic-instance fields (IsRealInstance == false).
	InstanceName  string // TSPLIB file under a fixed static directory.
	BestKnownCost float64
}

// RoutingConfig carries the credentials and vehicle type a real-instance
// solve needs to reach the routing provider.
type RoutingConfig struct {
	APIKey      string
	VehicleType string
	BaseURL     string // optional override, used by tests.
}

// StaticInstanceDir is the fixed directory synthetic InstanceName values are
// resolved against, per spec.md §6.
var StaticInstanceDir = "./instances"

// Solve validates problem and gaConfig, resolves the CostTable, and runs the
// GA engine, per spec.md §6's single boundary operation.
func Solve(ctx context.Context, problem Problem, gaConfig ga.GAConfig, routingConfig RoutingConfig) (ga.SolvedProblem, error) {
	if err := validateProblem(problem); err != nil {
		return ga.SolvedProblem{}, err
	}

	gaConfig.Dimension = problem.Dimension
	if err := gaConfig.Normalize(); err != nil {
		return ga.SolvedProblem{}, err
	}

	costs, err := resolveCostTable(ctx, problem, routingConfig)
	if err != nil {
		return ga.SolvedProblem{}, err
	}

	return ga.Solve(ctx, gaConfig, costs)
}

func validateProblem(problem Problem) error {
	if problem.Dimension < 3 || problem.Dimension > 100 {
		return tsperr.ErrDimensionOutOfRange
	}
	if problem.Algorithm != "GA" {
		return tsperr.ErrUnsupportedAlgorithm
	}
	if problem.IsRealInstance {
		if problem.APIName != "neshan" {
			return tsperr.ErrUnsupportedAPI
		}
		if problem.CoordinatesFile == "" {
			return tsperr.ErrCoordinatesFileEmpty
		}
	} else if problem.InstanceName == "" {
		return tsperr.ErrInstanceFileNotFound
	}
	return nil
}

func resolveCostTable(ctx context.Context, problem Problem, routingConfig RoutingConfig) (*costtable.CostTable, error) {
	if problem.IsRealInstance {
		return resolveRealCostTable(ctx, problem, routingConfig)
	}
	return resolveSyntheticCostTable(problem)
}

func resolveRealCostTable(ctx context.Context, problem Problem, routingConfig RoutingConfig) (*costtable.CostTable, error) {
	coords, err := routing.ParseCoordinatesFile(problem.CoordinatesFile)
	if err != nil {
		return nil, err
	}
	if len(coords) != problem.Dimension {
		return nil, tsperr.Wrap(tsperr.ErrInvalidConfig, "coordinates file line count does not match Dimension")
	}

	provider, err := routing.NewProvider(routing.Config{
		APIName:     problem.APIName,
		APIKey:      routingConfig.APIKey,
		BaseURL:     routingConfig.BaseURL,
		VehicleType: routingConfig.VehicleType,
	})
	if err != nil {
		return nil, err
	}

	client := &routing.Client{Provider: provider, VehicleType: routingConfig.VehicleType}
	return client.BuildCostTable(ctx, coords)
}

func resolveSyntheticCostTable(problem Problem) (*costtable.CostTable, error) {
	path := StaticInstanceDir + "/" + problem.InstanceName
	inst, err := tsplib.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return inst.Costs, nil
}
