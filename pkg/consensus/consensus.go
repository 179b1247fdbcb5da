// Package consensus will hold the PoX consensus engine for the chain:
//
//   - Proof of Stake for economic security
//   - Proof of Useful Work for computational contributions
//   - an adaptive regulator balancing the two into a validator's total
//     weight
//
// total_weight = (stake_weight * C_SR) + (sqrt(poc_score) * C_NL)
//
// None of this is implemented yet; only the trie, store, and block
// primitives this package will eventually consume are in scope here.
package consensus
