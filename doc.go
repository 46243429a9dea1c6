// Package tspga is a genetic-algorithm solver core for the Traveling
// Salesman Problem: permutation genetics over tours, fed by a cost-table
// construction pipeline that is either parsed from a TSPLIB-style file or
// built by concurrent calls to an external routing provider.
//
// The repository is organized as a set of focused subpackages:
//
//	tsperr/     — shared (Kind, Status, Msg) error vocabulary
//	costtable/  — dense N×N cost matrix, immutable once built
//	tsplib/     — TSPLIB-subset parser (EUC_2D synthetic instances)
//	routing/    — bounded-concurrency routing-provider client (real instances)
//	chromosome/ — tour representation, encoding, equality
//	ga/         — seeding, evaluation, selection, variation, survival, engine
//	solver/     — the solve(problem, configs) -> SolvedProblem boundary
//
// HTTP routing, persistence, authentication, logging configuration, and
// config loading live above this boundary and are not this module's
// concern; see solver.Solve for the single entry point these collaborators
// call into.
package tspga
