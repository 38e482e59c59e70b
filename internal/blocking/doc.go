// Package blocking groups resolved records into clusters that share an
// identity and expands every cluster into unordered match pairs.
//
// Solved records cluster by "<brand> <model>". Unsolved records cluster by
// their exact normalized title, which catches verbatim re-listings of the same
// product. The two pair sets are unioned into the final match list.
package blocking
