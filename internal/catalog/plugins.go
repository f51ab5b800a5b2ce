package catalog

import "ramacq/internal/services/analysis"

// PluginEntry is one runnable plugin with a short operator-facing description.
type PluginEntry struct {
	Name        string
	Description string
}

// PluginSection groups related plugins under a heading.
type PluginSection struct {
	Title   string
	Plugins []PluginEntry
}

var vol3Sections = []PluginSection{
	{
		Title: "Getting Started",
		Plugins: []PluginEntry{
			{"windows.info", "OS build, kernel, KDBG offset and symbol hints"},
			{"windows.pslist", "Enumerate active processes via EPROCESS list"},
			{"windows.pstree", "Show parent/child process tree"},
			{"windows.cmdline", "Display process command lines"},
			{"windows.envars", "Dump process environment variables"},
		},
	},
	{
		Title: "Registry & Services",
		Plugins: []PluginEntry{
			{"windows.registry.hivelist", "List registry hives located in memory"},
			{"windows.registry.printkey", "Display registry key values recursively"},
			{"windows.svcscan", "Enumerate registered services / drivers"},
			{"windows.driverscan", "Enumerate kernel drivers"},
		},
	},
	{
		Title: "Malware & Injection",
		Plugins: []PluginEntry{
			{"windows.malfind", "Scan for injected code, RWX pages"},
			{"windows.dlllist", "List loaded DLLs per process"},
			{"windows.modscan", "Find hidden/unlinked kernel modules"},
			{"windows.handles", "Enumerate kernel object handles"},
		},
	},
	{
		Title: "Network & Connections",
		Plugins: []PluginEntry{
			{"windows.netstat", "Active TCP/UDP endpoints with owning PID"},
			{"windows.etw", "Event Tracing for Windows sessions"},
		},
	},
	{
		Title: "Credentials",
		Plugins: []PluginEntry{
			{"windows.hashdump", "Dump SAM hashes (requires SYSTEM/SAM hives)"},
			{"windows.lsadump", "Extract LSA secrets / cached creds"},
			{"windows.cachedump", "Dump cached domain logons"},
		},
	},
	{
		Title: "Sensitive Data Discovery",
		Plugins: []PluginEntry{
			{"windows.filescan", "Enumerate file objects to surface financial or personal documents"},
			{"windows.dumpfiles", "Recover cached documents (medical, chat exports, explicit material)"},
			{"windows.strings", "Extract ASCII/Unicode strings that expose chats, card numbers, or diaries"},
			{"windows.memdump", "Dump process memory for applications caching private conversations"},
			{"windows.registry.shellbags", "Review folder navigation history revealing ideology/affiliations"},
		},
	},
}

var vol2Sections = []PluginSection{
	{
		Title: "Getting Started",
		Plugins: []PluginEntry{
			{"imageinfo", "Identify profile suggestions and KDBG offset"},
			{"pslist", "Enumerate active processes via linked lists"},
			{"pstree", "Process hierarchy tree"},
			{"psscan", "Pool scan for hidden/unlinked EPROCESS"},
			{"dlllist", "List loaded DLLs per process"},
		},
	},
	{
		Title: "Registry & Services",
		Plugins: []PluginEntry{
			{"hivelist", "List registry hives in memory"},
			{"printkey", "Dump registry keys/values"},
			{"svcscan", "Enumerate services/drivers"},
			{"envars", "Show process environment variables"},
		},
	},
	{
		Title: "Malware & Injection",
		Plugins: []PluginEntry{
			{"malfind", "Detect injected code / hidden DLLs"},
			{"modscan", "Pool scan for kernel modules"},
			{"ldrmodules", "Check DLL load order anomalies"},
			{"apihooks", "Detect API hooks in SSDT/IAT/EAT"},
		},
	},
	{
		Title: "Network & Connections",
		Plugins: []PluginEntry{
			{"netscan", "Enumerate TCP/UDP sockets (Vista+)"},
			{"connscan", "Scan for historic TCP connections (XP/2003)"},
			{"connections", "Enumerate active TCP connections"},
		},
	},
	{
		Title: "Credentials",
		Plugins: []PluginEntry{
			{"hashdump", "Dump SAM credential hashes"},
			{"cachedump", "Dump cached domain logons"},
			{"lsadump", "Extract LSA secrets"},
			{"vaultcmd", "Show Windows Vault credential entries"},
		},
	},
}

// PluginSections returns the curated catalog for the given Volatility
// generation.
func PluginSections(version analysis.Version) []PluginSection {
	if version == analysis.V2 {
		return vol2Sections
	}
	return vol3Sections
}
