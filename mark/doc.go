// Package mark implements the Edge Marker (§4.1): it walks every edge on
// this peer, consults a sizefield.SizeField, stamps FlagSplit/FlagDontSplit,
// and reports a collective count. It is the first phase of every sweep;
// a zero count aborts the sweep before propagation ever runs.
package mark
