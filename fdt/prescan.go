package fdt

// preScan counts occurrences of BEGIN_NODE (1) and PROP (3) among every
// cell of the structure block. Spec section 4.4 defines this as
// deliberately token-naive: it inspects every cell rather than only
// token-aligned cells, so the counts are upper bounds that correctly
// (if sometimes generously) size the arena. NOP (4) and END_NODE/END
// (2, 9) values are not counted; this scan never advances past
// cellCount cells and never interprets payload structure.
func preScan(cells []byte) (nodeCount, propCount int) {
	n := len(cells) / 4
	for i := 0; i < n; i++ {
		switch cellAt(cells, i) {
		case tokenBeginNode:
			nodeCount++
		case tokenProp:
			propCount++
		}
	}
	return nodeCount, propCount
}
