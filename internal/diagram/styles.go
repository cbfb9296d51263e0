package diagram

// styleLines is the fixed footer appended after topology emission:
// class definitions for the four visual categories plus the class
// assignments. The assignments reference a static set of identifiers
// rather than the emitted node ids; regenerating them from the actual
// node set is a known open item, so the literal footer is kept as-is
// for output compatibility.
func styleLines() []string {
	return []string{
		"    %% Styling",
		"    classDef vpc fill:#f5f5f5,stroke:#333,stroke-width:2px",
		"    classDef az fill:#e6f3ff,stroke:#333,stroke-width:1px",
		"    classDef subnet fill:#fff,stroke:#333,stroke-width:1px",
		"    classDef component fill:#fff,stroke:#666,stroke-width:1px,stroke-dasharray: 5 5",
		"",
		"    %% Apply styles",
		"    class vpc vpc",
		"    class az1 az",
		"    class pub_subnet,priv_subnet subnet",
		"    class pub_rt,web_sg,igw component",
	}
}
