// Package merkle builds binary hash trees over ordered 32-byte leaves for
// batching payment authorizations, and generates and verifies inclusion
// proofs against their roots.
//
// Sibling pairs are sorted by byte value before hashing, so a proof verifies
// without carrying left/right direction flags. The root therefore commits to
// the leaf sequence through position-dependent pairing, not to the byte
// order inside each pair; reordering leaves still changes the root. An odd
// trailing node at any layer is promoted unchanged to the next layer, never
// paired with itself, so proofs for unbalanced trees can be shorter than
// ceil(log2(n)).
package merkle

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	nova402 "github.com/nova402/novax402"
)

// Tree is an immutable Merkle tree. All layers live in a single digest
// arena indexed by per-layer offsets; leaves are layer 0, the root is the
// single node of the last layer.
type Tree struct {
	arena   []common.Hash
	offsets []int // start of each layer in arena
	counts  []int // node count of each layer
}

// hashPair hashes two sibling digests with the canonical ordering: the
// smaller digest by byte value goes first. Compatibility invariant, do not
// replace with positional concatenation.
func hashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	combined := make([]byte, 0, 2*common.HashLength)
	combined = append(combined, a[:]...)
	combined = append(combined, b[:]...)
	return common.BytesToHash(crypto.Keccak256(combined))
}

// NewTree builds a tree over the given leaves. Fails with an empty-tree
// error when leaves is empty.
func NewTree(leaves []common.Hash) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, nova402.NewFieldError(nova402.ErrEmptyTree, "cannot create tree with no leaves")
	}

	// Size the arena up front: each layer has ceil(prev/2) nodes.
	total := 0
	layers := 0
	for n := len(leaves); ; n = (n + 1) / 2 {
		total += n
		layers++
		if n == 1 {
			break
		}
	}

	t := &Tree{
		arena:   make([]common.Hash, total),
		offsets: make([]int, layers),
		counts:  make([]int, layers),
	}
	copy(t.arena, leaves)
	t.counts[0] = len(leaves)

	for layer := 0; layer+1 < layers; layer++ {
		cur := t.layer(layer)
		next := t.arena[t.offsets[layer]+t.counts[layer]:]
		t.offsets[layer+1] = t.offsets[layer] + t.counts[layer]
		t.counts[layer+1] = (t.counts[layer] + 1) / 2

		for i := 0; i < len(cur); i += 2 {
			if i+1 < len(cur) {
				next[i/2] = hashPair(cur[i], cur[i+1])
			} else {
				// Unpaired trailing node, promote unchanged.
				next[i/2] = cur[i]
			}
		}
	}

	return t, nil
}

func (t *Tree) layer(i int) []common.Hash {
	return t.arena[t.offsets[i] : t.offsets[i]+t.counts[i]]
}

// Root returns the tree's root digest.
func (t *Tree) Root() common.Hash {
	last := t.layer(len(t.counts) - 1)
	if len(last) != 1 {
		panic("merkle: final layer is not a single node")
	}
	return last[0]
}

// LeafCount returns the number of leaves the tree was built from.
func (t *Tree) LeafCount() int {
	return t.counts[0]
}

// Leaves returns a copy of the leaf layer.
func (t *Tree) Leaves() []common.Hash {
	leaves := make([]common.Hash, t.counts[0])
	copy(leaves, t.layer(0))
	return leaves
}

// GenerateProof returns the sibling digests proving inclusion of the leaf at
// index, ordered leaf layer first. Layers where the walked node was an
// unpaired trailing node contribute no entry. Fails with an out-of-range
// error when index >= LeafCount.
func (t *Tree) GenerateProof(index int) ([]common.Hash, error) {
	if index < 0 || index >= t.counts[0] {
		return nil, nova402.NewIndexError(index, t.counts[0])
	}

	proof := make([]common.Hash, 0, len(t.counts)-1)
	current := index

	for layer := 0; layer+1 < len(t.counts); layer++ {
		nodes := t.layer(layer)
		sibling := current ^ 1
		if sibling < len(nodes) {
			proof = append(proof, nodes[sibling])
		}
		current /= 2
	}

	return proof, nil
}

// VerifyProof checks an inclusion proof for the leaf at index against this
// tree's root.
func (t *Tree) VerifyProof(leaf common.Hash, proof []common.Hash, index int) bool {
	return VerifyProof(leaf, proof, t.Root(), index)
}

// VerifyProof folds proof over leaf and reports whether the result equals
// root. It tolerates proofs shorter than ceil(log2(n)) produced by
// odd-promotion layers.
func VerifyProof(leaf common.Hash, proof []common.Hash, root common.Hash, index int) bool {
	computed := leaf
	current := index

	for _, sibling := range proof {
		left, right := computed, sibling
		if current%2 != 0 {
			left, right = right, left
		}
		// hashPair re-sorts, matching construction.
		computed = hashPair(left, right)
		current /= 2
	}

	return computed == root
}

// ComputeRoot returns the root committing to leaves. The root of a one-leaf
// tree is the leaf itself.
func ComputeRoot(leaves []common.Hash) (common.Hash, error) {
	if len(leaves) == 0 {
		return common.Hash{}, nova402.NewFieldError(nova402.ErrEmptyTree, "cannot compute root of empty tree")
	}
	if len(leaves) == 1 {
		return leaves[0], nil
	}
	t, err := NewTree(leaves)
	if err != nil {
		return common.Hash{}, err
	}
	return t.Root(), nil
}

// GenerateProof builds a tree over leaves and returns the proof for index.
func GenerateProof(leaves []common.Hash, index int) ([]common.Hash, error) {
	t, err := NewTree(leaves)
	if err != nil {
		return nil, err
	}
	return t.GenerateProof(index)
}
