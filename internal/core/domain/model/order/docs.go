// Package order contains the Order aggregate and its lifecycle state
// machine, plus the payment policy and pizza line-item value objects.
//
// The status enum drives a fixed forward sequence (Received, In Preparation,
// Ready, In Transit, Delivered) with exactly one legal operation per state.
// Transition logic lives on the Status type as per-event functions switching
// on the current tag, so the compiler can check exhaustiveness and restoring
// an order from storage re-derives its legal operations from the stored
// status field alone.
package order
