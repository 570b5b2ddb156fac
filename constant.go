package vietqr

// defaultRoutingEntries is the built-in bank code to BIN mapping used by
// DefaultRoutingTable. VCB is the fallback for unknown codes.
var defaultRoutingEntries = []RoutingEntry{
	{Code: "VCB", BIN: "970436", Name: "Vietcombank"},
	{Code: "TCB", BIN: "970407", Name: "Techcombank"},
	{Code: "BIDV", BIN: "970415", Name: "BIDV"},
	{Code: "ACB", BIN: "970416", Name: "ACB"},
	{Code: "VIB", BIN: "970441", Name: "VIB"},
	{Code: "VPB", BIN: "970432", Name: "VPBank"},
	{Code: "TPB", BIN: "970423", Name: "TPBank"},
	{Code: "HDB", BIN: "970437", Name: "HDBank"},
	{Code: "MSB", BIN: "970426", Name: "MSB"},
	{Code: "VAB", BIN: "970427", Name: "VietABank"},
	{Code: "NAB", BIN: "970428", Name: "NamABank"},
	{Code: "OCB", BIN: "970448", Name: "OCB"},
	{Code: "MBB", BIN: "970422", Name: "MBBank"},
	{Code: "STB", BIN: "970403", Name: "Sacombank"},
	{Code: "VCCB", BIN: "970436", Name: "Vietcombank"}, // Alias of VCB
}
