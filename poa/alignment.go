package poa

import "fmt"

// AddAlignment inserts a sequence into the graph under an externally
// computed alignment, fusing matched symbols into existing nodes,
// grouping mismatched symbols into aligned-node sets, and creating fresh
// nodes for insertions. weights carries one non-negative weight per
// symbol; each edge receives the sum of its two endpoint weights.
//
// An empty sequence is a no-op. An empty (or nil) alignment inserts the
// sequence as an unanchored fresh chain. After every successful insertion
// the topological order is refreshed, keeping aligned nodes consecutively
// ranked.
//
// Complexity: O(V + E) per call, dominated by the re-sort.
func (g *Graph) AddAlignment(alignment Alignment, seq []byte, weights []int64) error {
	if len(seq) == 0 {
		return nil
	}

	// 1) Contract checks: weights cover the sequence and are non-negative.
	if len(seq) != len(weights) {
		return fmt.Errorf("%w: %d symbols, %d weights", ErrLengthMismatch, len(seq), len(weights))
	}
	for _, w := range weights {
		if w < 0 {
			return ErrBadWeight
		}
	}

	beginNodeID := Unaligned

	if len(alignment) == 0 {
		// 2) No anchor: the whole sequence becomes a fresh chain.
		beginNodeID, _ = g.AddSequence(seq, weights, 0, len(seq))
	} else {
		// 3) Collect the sequence positions present in the alignment.
		validSeqIdxs := make([]int, 0, len(alignment))
		for _, pair := range alignment {
			if pair.SeqIdx == Unaligned {
				continue
			}
			if pair.SeqIdx < 0 || pair.SeqIdx >= len(seq) {
				return fmt.Errorf("%w: position %d of %d", ErrInvalidAlignment, pair.SeqIdx, len(seq))
			}

			validSeqIdxs = append(validSeqIdxs, pair.SeqIdx)
		}
		if len(validSeqIdxs) == 0 {
			return ErrMissingSequence
		}

		// 4) Head bypass: fresh chain for the unaligned prefix.
		var prevNodeID int
		beginNodeID, prevNodeID = g.AddSequence(seq, weights, 0, validSeqIdxs[0])

		// 5) Tail bypass: fresh chain for the unaligned suffix.
		lastSeqIdx := validSeqIdxs[len(validSeqIdxs)-1]
		tailNodeID, _ := g.AddSequence(seq, weights, lastSeqIdx+1, len(seq))

		// 6) Aligned middle: walk the pairs carrying a sequence position.
		for _, pair := range alignment {
			if pair.SeqIdx == Unaligned {
				continue
			}

			letter := seq[pair.SeqIdx]

			currNodeID := Unaligned
			switch {
			case pair.NodeID == Unaligned:
				// Insertion: always a fresh node.
				currNodeID = g.AddNode(letter)
			case g.nodes[pair.NodeID].character == letter:
				// Match: reuse the aligned node itself.
				currNodeID = pair.NodeID
			default:
				// Mismatch: reuse a column mate carrying the same symbol,
				// or extend the aligned set with a fresh node.
				for _, alignedNodeID := range g.nodes[pair.NodeID].alignedNodeIDs {
					if g.nodes[alignedNodeID].character == letter {
						currNodeID = alignedNodeID
						break
					}
				}

				if currNodeID == Unaligned {
					currNodeID = g.AddNode(letter)

					// The new node joins the column: link it pairwise with
					// every pre-existing member, keeping the relation
					// symmetric.
					alignedNodeIDs := g.nodes[pair.NodeID].alignedNodeIDs
					for _, alignedNodeID := range alignedNodeIDs {
						g.nodes[currNodeID].alignedNodeIDs = append(g.nodes[currNodeID].alignedNodeIDs, alignedNodeID)
						g.nodes[alignedNodeID].alignedNodeIDs = append(g.nodes[alignedNodeID].alignedNodeIDs, currNodeID)
					}

					g.nodes[currNodeID].alignedNodeIDs = append(g.nodes[currNodeID].alignedNodeIDs, pair.NodeID)
					g.nodes[pair.NodeID].alignedNodeIDs = append(g.nodes[pair.NodeID].alignedNodeIDs, currNodeID)
				}
			}

			if beginNodeID == Unaligned {
				beginNodeID = currNodeID
			}

			if prevNodeID != Unaligned {
				g.AddEdge(prevNodeID, currNodeID, weights[pair.SeqIdx-1]+weights[pair.SeqIdx])
			}

			prevNodeID = currNodeID
		}

		// 7) Connect the aligned middle to the tail bypass.
		if tailNodeID != Unaligned {
			g.AddEdge(prevNodeID, tailNodeID, weights[lastSeqIdx]+weights[lastSeqIdx+1])
		}
	}

	g.sequencesBeginNodeIDs = append(g.sequencesBeginNodeIDs, beginNodeID)

	return g.topologicalSort()
}
