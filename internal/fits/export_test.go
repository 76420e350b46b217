package fits

// RowMajor exposes the axis-order conversion to external tests.
var RowMajor = rowMajor
