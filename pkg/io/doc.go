// Package io reads probe coordinates and writes MST reports.
//
// # Input Format
//
// One line per site. Probes are separated by whitespace, and the two
// coordinates of a probe are separated by a comma:
//
//	500,8000 1000,9500 2000,8500
//	8028,5930 1835,5145 8537,9824 7623,7936 8031,1207
//
// Blank lines are skipped and do not count as sites. Parsing is permissive:
// when a token is malformed, the site keeps the probes parsed before it, the
// rest of the line is dropped, and a [*ParseError] is recorded. Reading then
// continues with the next line. [ReadSites] returns every site it read
// together with all parse errors joined by [errors.Join].
//
// # Output Formats
//
// [WriteTotals] prints one rounded cable length per line, in site order.
// [WriteJSON] writes a [Report] that carries the run ID, the method, and the
// tree edges of every site:
//
//	{
//	  "run_id": "1f0c...",
//	  "method": "prim",
//	  "sites": [
//	    {"site": 1, "probes": 3, "total": 7, "rounded": 7, "root": 0,
//	     "edges": [{"from": 0, "to": 1, "length": 3}, ...]}
//	  ]
//	}
//
// When a faulty probe was removed, "rebuilt" holds the rebuilt site in the
// same form. Sites are numbered from 1 in reports, matching the order of input lines.
package io
