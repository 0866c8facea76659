// Package thermal implements transient 1D heat conduction along a rod.
//
// The governing equation dT/dt = alpha' * d²T/dx² is discretized with an
// explicit forward-time, central-space (FTCS) scheme:
//
//   - [RodConfig]: immutable description of one simulation run
//   - [Solver]: derived parameters and the stepping engine
//   - [Field]: the computed space-time temperature field
//
// The time step is bounded by the von Neumann stability limit
// dt = dx²/(2·alpha'); exceeding it makes the explicit scheme diverge.
// Boundary temperatures are Dirichlet conditions applied as ghost values
// in the stencil at the two edge nodes and are never stored in the field.
//
// # Example
//
//	sol, err := thermal.Prepare(cfg, props)
//	if err != nil { ... }
//	field, err := sol.Solve(ctx)
//
// # Thread Safety
//
// Solver and Stepper instances are NOT thread-safe. The field is owned
// exclusively by the solver during a run and handed off read-only.
package thermal
