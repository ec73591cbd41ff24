package progression

import (
	"fmt"
	"strconv"

	apperrors "github.com/Slatyo/Valheim-Viking/internal/platform/errors"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/tree"
)

// IsReachable reports whether nodeID can legally join the allocated set:
// it is the bound start node, or an entry point is chosen and the node has
// an edge to some allocated node. Edges are checked in both directions
// because authored connections carry no symmetry guarantee.
func IsReachable(cat *tree.Catalog, s State, nodeID string) bool {
	startID := s.StartNodeID(cat)
	if startID == "" {
		return false
	}
	if nodeID == startID {
		return true
	}
	for allocated, rank := range s.AllocatedRanks {
		if rank < 1 {
			continue
		}
		if cat.Connected(nodeID, allocated) || cat.Connected(allocated, nodeID) {
			return true
		}
	}
	return false
}

// CanAllocate reports whether one point can be spent on nodeID right now.
// Conditions are evaluated in order; the first failure is the rejection
// reason a caller surfaces.
func CanAllocate(cat *tree.Catalog, s State, nodeID string, available int) error {
	if !s.HasEntryPoint() {
		return apperrors.New(apperrors.CodeEntryPointNotChosen, "no entry point chosen")
	}
	if available <= 0 {
		return apperrors.New(apperrors.CodeNoAvailablePoints, "no available points")
	}
	node, ok := cat.Node(nodeID)
	if !ok {
		return apperrors.WithMetadata(apperrors.CodeNodeNotFound,
			fmt.Sprintf("node %s not found", nodeID),
			map[string]string{"NodeID": nodeID})
	}
	if node.Type == tree.NodeTypeStart {
		return apperrors.WithMetadata(apperrors.CodeNodeIsStartType,
			fmt.Sprintf("node %s is a start node", nodeID),
			map[string]string{"NodeID": nodeID})
	}
	if s.Rank(nodeID) >= node.MaxRanks {
		return apperrors.WithMetadata(apperrors.CodeNodeMaxRanked,
			fmt.Sprintf("node %s is at max rank %d", nodeID, node.MaxRanks),
			map[string]string{"NodeID": nodeID, "MaxRanks": strconv.Itoa(node.MaxRanks)})
	}
	if !IsReachable(cat, s, nodeID) {
		return apperrors.WithMetadata(apperrors.CodeNodeUnreachable,
			fmt.Sprintf("node %s is not connected to any allocated node", nodeID),
			map[string]string{"NodeID": nodeID})
	}
	return nil
}

// CanDeallocate reports whether removing one rank from nodeID keeps every
// other allocated node connected to the start node. The authority only ever
// tests the tail of the history; arbitrary mid-history removal is not
// supported.
func CanDeallocate(cat *tree.Catalog, s State, nodeID string) error {
	rank := s.Rank(nodeID)
	if rank < 1 {
		return apperrors.WithMetadata(apperrors.CodeNodeNotFound,
			fmt.Sprintf("node %s is not allocated", nodeID),
			map[string]string{"NodeID": nodeID})
	}
	if rank > 1 {
		// Only a rank decrement; topology is unaffected.
		return nil
	}

	candidates := make(map[string]struct{}, len(s.AllocatedRanks))
	for allocated, r := range s.AllocatedRanks {
		if r >= 1 && allocated != nodeID {
			candidates[allocated] = struct{}{}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	startID := s.StartNodeID(cat)
	if _, ok := candidates[startID]; !ok {
		// The remaining set has no start anchor; nothing can stay connected.
		return apperrors.WithMetadata(apperrors.CodeDeallocationWouldOrphanNodes,
			fmt.Sprintf("removing %s would orphan %d nodes", nodeID, len(candidates)),
			map[string]string{"NodeID": nodeID})
	}

	visited := map[string]struct{}{startID: {}}
	queue := []string{startID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range cat.Neighbors(current) {
			if _, isCandidate := candidates[neighbor]; !isCandidate {
				continue
			}
			if _, seen := visited[neighbor]; seen {
				continue
			}
			visited[neighbor] = struct{}{}
			queue = append(queue, neighbor)
		}
	}

	if len(visited) != len(candidates) {
		return apperrors.WithMetadata(apperrors.CodeDeallocationWouldOrphanNodes,
			fmt.Sprintf("removing %s would orphan %d nodes", nodeID, len(candidates)-len(visited)),
			map[string]string{"NodeID": nodeID})
	}
	return nil
}
