package rules

// BuiltinVersion is the revision of the rule table compiled into the binary
const BuiltinVersion = "1.0.0"

// builtinDefinitions is the shipped rule table, grouped by category.
// Declaration order is significant: it fixes match order within a line.
var builtinDefinitions = []Definition{
	// Destructive operations
	{
		ID:          "RM_RF_ROOT",
		Name:        "Delete root directory",
		Pattern:     `rm\s+(-[a-zA-Z]*)*\s*-r[a-zA-Z]*\s+(-[a-zA-Z]*\s+)*/(#|$|\s|;|\|)`,
		Severity:    SeverityCritical,
		Category:    CategoryDestructive,
		Weight:      100,
		Description: "rm -rf / removes the root directory",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Check the command arguments; never operate on the root directory or on wildcards",
		CWE:         "CWE-78",
	},
	{
		ID:          "RM_RF_HOME",
		Name:        "Delete home directory",
		Pattern:     `rm\s+(-[a-zA-Z]*)*\s*-r[a-zA-Z]*\s+(-[a-zA-Z]*\s+)*(~|\$HOME)`,
		Severity:    SeverityCritical,
		Category:    CategoryDestructive,
		Weight:      90,
		Description: "rm -rf ~ removes the user's home directory",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Check the command arguments; never operate on the user's home directory",
		CWE:         "CWE-78",
	},
	{
		ID:          "DD_WIPE",
		Name:        "Disk wipe",
		Pattern:     `dd\s+.*of=/dev/(sd[a-z]|nvme|hd[a-z]|vd[a-z])`,
		Severity:    SeverityCritical,
		Category:    CategoryDestructive,
		Weight:      100,
		Description: "dd writes directly to a disk device",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Check the command arguments; never write to system disk devices",
		CWE:         "CWE-78",
	},
	{
		ID:          "MKFS_FORMAT",
		Name:        "Format disk",
		Pattern:     `mkfs(\.[a-z0-9]+)?\s+/dev/`,
		Severity:    SeverityCritical,
		Category:    CategoryDestructive,
		Weight:      100,
		Description: "mkfs formats a device",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Check the command arguments; never format system disks",
		CWE:         "CWE-78",
	},

	// Remote execution
	{
		ID:          "CURL_PIPE_SH",
		Name:        "Curl piped to shell",
		Pattern:     `curl\s+[^|]*\|\s*(ba)?sh`,
		Severity:    SeverityCritical,
		Category:    CategoryRemoteExec,
		Weight:      90,
		Description: "curl | sh executes a remote script",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Do not execute remote scripts directly; download and review them first",
		CWE:         "CWE-78",
	},
	{
		ID:          "WGET_PIPE_SH",
		Name:        "Wget piped to shell",
		Pattern:     `wget\s+[^|]*\|\s*(ba)?sh`,
		Severity:    SeverityCritical,
		Category:    CategoryRemoteExec,
		Weight:      90,
		Description: "wget | sh executes a remote script",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Do not execute remote scripts directly; download and review them first",
		CWE:         "CWE-78",
	},
	{
		ID:          "BASE64_EXEC",
		Name:        "Base64 decode and execute",
		Pattern:     `base64\s+(-d|--decode)[^|]*\|\s*(ba)?sh`,
		Severity:    SeverityCritical,
		Category:    CategoryRemoteExec,
		Weight:      85,
		Description: "base64-decoded content is executed",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Do not execute base64-encoded commands; they can hide malicious code",
		CWE:         "CWE-506",
	},
	{
		ID:          "REVERSE_SHELL",
		Name:        "Reverse shell",
		Pattern:     `(socket\.socket|s\.connect|os\.dup2|subprocess\.call.*bin/(ba)?sh)`,
		Severity:    SeverityCritical,
		Category:    CategoryRemoteExec,
		Weight:      95,
		Description: "reverse shell backdoor",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Review network connections and process calls for reverse shell backdoors",
		CWE:         "CWE-506",
	},

	// Command injection
	{
		ID:          "PY_EVAL",
		Name:        "Python eval",
		Pattern:     `\beval\s*\(`,
		Severity:    SeverityHigh,
		Category:    CategoryCmdInjection,
		Weight:      70,
		Description: "eval() executes dynamic code",
		Confidence:  ConfidenceMedium,
		Remediation: "Avoid eval(); use a safe alternative",
		CWE:         "CWE-94",
	},
	{
		ID:          "PY_EXEC",
		Name:        "Python exec",
		Pattern:     `\bexec\s*\(`,
		Severity:    SeverityHigh,
		Category:    CategoryCmdInjection,
		Weight:      70,
		Description: "exec() executes dynamic code",
		Confidence:  ConfidenceMedium,
		Remediation: "Avoid exec(); use a safe alternative",
		CWE:         "CWE-94",
	},
	{
		ID:          "OS_SYSTEM",
		Name:        "os.system",
		Pattern:     `os\.system\s*\(`,
		Severity:    SeverityHigh,
		Category:    CategoryCmdInjection,
		Weight:      65,
		Description: "os.system() runs a shell command",
		Confidence:  ConfidenceMedium,
		Remediation: "Avoid os.system(); use subprocess.run() with shell=False",
		CWE:         "CWE-78",
	},
	{
		ID:          "SUBPROCESS_SHELL",
		Name:        "subprocess shell=True",
		Pattern:     `subprocess\.(run|call|Popen)\s*\([^)]*shell\s*=\s*True`,
		Severity:    SeverityHigh,
		Category:    CategoryCmdInjection,
		Weight:      65,
		Description: "subprocess invoked with shell=True",
		Confidence:  ConfidenceHigh,
		Remediation: "Do not set shell=True; pass the command as an argument list",
		CWE:         "CWE-78",
	},
	{
		ID:          "SUBPROCESS_CALL",
		Name:        "subprocess call",
		Pattern:     `subprocess\.(run|call|Popen)\s*\(`,
		Severity:    SeverityMedium,
		Category:    CategoryCmdInjection,
		Weight:      25,
		Description: "subprocess starts a process",
		Confidence:  ConfidenceLow,
		Remediation: "Validate command arguments to avoid injection",
		CWE:         "CWE-78",
	},
	{
		ID:          "NODE_CHILD_EXEC",
		Name:        "Node.js child_process.exec",
		Pattern:     `child_process\.exec\s*\(`,
		Severity:    SeverityHigh,
		Category:    CategoryCmdInjection,
		Weight:      70,
		Description: "child_process.exec runs a shell command",
		Confidence:  ConfidenceHigh,
		Remediation: "Avoid exec(); use execFile() or spawn() with validated arguments",
		CWE:         "CWE-78",
	},
	{
		ID:          "NODE_VM_RUN",
		Name:        "Node.js vm.runInNewContext",
		Pattern:     `vm\.runInNewContext\s*\(`,
		Severity:    SeverityHigh,
		Category:    CategoryCmdInjection,
		Weight:      65,
		Description: "vm.runInNewContext executes dynamic code",
		Confidence:  ConfidenceHigh,
		Remediation: "Do not execute unvalidated code dynamically",
		CWE:         "CWE-94",
	},

	// Network
	{
		ID:          "CURL_POST",
		Name:        "Curl POST",
		Pattern:     `curl\s+[^;|]*-X\s*POST`,
		Severity:    SeverityMedium,
		Category:    CategoryNetwork,
		Weight:      40,
		Description: "curl sends a POST request",
		Confidence:  ConfidenceMedium,
		Remediation: "Confirm the request target; make sure no sensitive data is sent",
		CWE:         "CWE-319",
	},
	{
		ID:          "NETCAT",
		Name:        "Netcat connection",
		Pattern:     `\bnc\s+(-[a-z]*\s+)*[a-zA-Z0-9.-]+\s+\d+`,
		Severity:    SeverityHigh,
		Category:    CategoryNetwork,
		Weight:      60,
		Description: "netcat opens a network connection",
		Confidence:  ConfidenceMedium,
		Remediation: "Review netcat usage for unauthorized connections",
		CWE:         "CWE-319",
	},
	{
		ID:          "PY_URLLIB",
		Name:        "Python urllib",
		Pattern:     `urllib\.request\.urlopen\s*\(`,
		Severity:    SeverityMedium,
		Category:    CategoryNetwork,
		Weight:      35,
		Description: "urllib performs a network request",
		Confidence:  ConfidenceLow,
		Remediation: "Confirm the target URL is trusted and uses HTTPS",
	},
	{
		ID:          "HTTP_REQUEST",
		Name:        "HTTP request library",
		Pattern:     `requests\.(get|post|put|delete|patch)\s*\(`,
		Severity:    SeverityLow,
		Category:    CategoryNetwork,
		Weight:      15,
		Description: "Python requests performs an HTTP request",
		Confidence:  ConfidenceLow,
		Remediation: "Confirm the target URL is trusted and uses HTTPS",
	},
	{
		ID:          "WEBSOCKET_CONNECT",
		Name:        "WebSocket connection",
		Pattern:     `(new\s+WebSocket|ws://|wss://)`,
		Severity:    SeverityLow,
		Category:    CategoryNetwork,
		Weight:      25,
		Description: "opens a WebSocket connection",
		Confidence:  ConfidenceLow,
		Remediation: "Confirm the WebSocket endpoint is trusted; prefer wss://",
	},
	{
		ID:          "FTP_PROTOCOL",
		Name:        "FTP protocol",
		Pattern:     `ftp://`,
		Severity:    SeverityMedium,
		Category:    CategoryNetwork,
		Weight:      40,
		Description: "uses the unencrypted FTP protocol",
		Confidence:  ConfidenceHigh,
		Remediation: "Use SFTP or FTPS instead of plain FTP",
		CWE:         "CWE-319",
	},

	// Privilege escalation
	{
		ID:          "SUDO",
		Name:        "sudo escalation",
		Pattern:     `\bsudo\s+`,
		Severity:    SeverityHigh,
		Category:    CategoryPrivilege,
		Weight:      60,
		Description: "sudo escalates privileges",
		Confidence:  ConfidenceLow,
		Remediation: "Review why sudo is needed; follow least privilege",
		CWE:         "CWE-250",
	},
	{
		ID:          "CHMOD_777",
		Name:        "chmod 777",
		Pattern:     `chmod\s+(-[a-zA-Z]*\s+)*7[0-7]{2}`,
		Severity:    SeverityHigh,
		Category:    CategoryPrivilege,
		Weight:      55,
		Description: "chmod opens up file permissions",
		Confidence:  ConfidenceHigh,
		Remediation: "Do not grant 777-style permissions; follow least privilege",
		CWE:         "CWE-732",
	},
	{
		ID:          "SUDOERS",
		Name:        "sudoers modification",
		Pattern:     `(/etc/sudoers|visudo|NOPASSWD)`,
		Severity:    SeverityCritical,
		Category:    CategoryPrivilege,
		Weight:      95,
		Description: "modifies the sudoers configuration",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Review sudoers changes for improper privilege grants",
		CWE:         "CWE-250",
	},

	// Secrets
	{
		ID:          "PRIVATE_KEY",
		Name:        "Hardcoded private key",
		Pattern:     `-----BEGIN\s+(RSA|OPENSSH|EC|DSA)?\s*PRIVATE KEY-----`,
		Severity:    SeverityHigh,
		Category:    CategorySecrets,
		Weight:      70,
		Description: "a private key is embedded in the file",
		Confidence:  ConfidenceHigh,
		Remediation: "Use environment variables or a secret manager instead of embedding keys",
		CWE:         "CWE-798",
	},
	{
		ID:          "API_KEY",
		Name:        "API key",
		Pattern:     `(api[_-]?key|apikey|api_secret)\s*[=:]\s*["'][a-zA-Z0-9_-]{16,}["']`,
		Severity:    SeverityHigh,
		Category:    CategorySecrets,
		Weight:      60,
		Description: "hardcoded API key",
		Confidence:  ConfidenceHigh,
		Remediation: "Use environment variables or a secret manager instead of hardcoding API keys",
		CWE:         "CWE-798",
	},
	{
		ID:          "PASSWORD",
		Name:        "Hardcoded password",
		Pattern:     `(password|passwd|pwd)\s*[=:]\s*["'][^"']{4,}["']`,
		Severity:    SeverityHigh,
		Category:    CategorySecrets,
		Weight:      55,
		Description: "hardcoded password",
		Confidence:  ConfidenceMedium,
		Remediation: "Use environment variables or configuration instead of hardcoding passwords",
		CWE:         "CWE-798",
	},
	{
		ID:          "AWS_KEY",
		Name:        "AWS access key",
		Pattern:     `(AKIA|ASIA)[A-Z0-9]{16}`,
		Severity:    SeverityCritical,
		Category:    CategorySecrets,
		Weight:      80,
		Description: "AWS access key id",
		Confidence:  ConfidenceHigh,
		Remediation: "Use an AWS secret store or environment variables instead of hardcoding keys",
		CWE:         "CWE-798",
	},
	{
		ID:          "GITHUB_TOKEN",
		Name:        "GitHub token",
		Pattern:     `ghp_[a-zA-Z0-9]{36}`,
		Severity:    SeverityCritical,
		Category:    CategorySecrets,
		Weight:      80,
		Description: "GitHub personal access token",
		Confidence:  ConfidenceHigh,
		Remediation: "Use GitHub secrets or environment variables instead of hardcoding tokens",
		CWE:         "CWE-798",
	},
	{
		ID:          "JWT_TOKEN",
		Name:        "Hardcoded JWT",
		Pattern:     `eyJ[a-zA-Z0-9_-]{10,}\.[a-zA-Z0-9_-]{10,}\.[a-zA-Z0-9_-]{10,}`,
		Severity:    SeverityHigh,
		Category:    CategorySecrets,
		Weight:      75,
		Description: "hardcoded JWT token",
		Confidence:  ConfidenceHigh,
		Remediation: "Do not hardcode JWTs; store them securely",
		CWE:         "CWE-798",
	},
	{
		ID:          "DB_CONNECTION_STRING",
		Name:        "Database connection string",
		Pattern:     `(mongodb|mysql|postgresql|postgres)://[^\s"']{10,}`,
		Severity:    SeverityHigh,
		Category:    CategorySecrets,
		Weight:      70,
		Description: "hardcoded database connection string",
		Confidence:  ConfidenceHigh,
		Remediation: "Keep connection strings in environment variables or configuration",
		CWE:         "CWE-798",
	},
	{
		ID:          "SLACK_WEBHOOK",
		Name:        "Slack webhook URL",
		Pattern:     `https://hooks\.slack\.com/services/[A-Z0-9/]{30,}`,
		Severity:    SeverityMedium,
		Category:    CategorySecrets,
		Weight:      50,
		Description: "hardcoded Slack webhook URL",
		Confidence:  ConfidenceHigh,
		Remediation: "Keep webhook URLs in environment variables",
		CWE:         "CWE-798",
	},
	{
		ID:          "GENERIC_SECRET",
		Name:        "Generic secret",
		Pattern:     `(secret|token|key)\s*[=:]\s*["'][a-zA-Z0-9_-]{16,}["']`,
		Severity:    SeverityMedium,
		Category:    CategorySecrets,
		Weight:      45,
		Description: "possible hardcoded secret",
		Confidence:  ConfidenceLow,
		Remediation: "Check whether the value is sensitive; use a secret manager",
		CWE:         "CWE-798",
	},

	// Persistence
	{
		ID:          "CRONTAB",
		Name:        "Crontab persistence",
		Pattern:     `(crontab\s+-|/etc/cron)`,
		Severity:    SeverityHigh,
		Category:    CategoryPersistence,
		Weight:      65,
		Description: "installs a scheduled task",
		Confidence:  ConfidenceMedium,
		Remediation: "Review scheduled task contents for malicious persistence",
		CWE:         "CWE-506",
	},
	{
		ID:          "SSH_KEYS",
		Name:        "SSH key injection",
		Pattern:     `(>>|>)\s*~?/?(.ssh/authorized_keys|.ssh/id_)`,
		Severity:    SeverityCritical,
		Category:    CategoryPersistence,
		Weight:      90,
		Description: "writes SSH keys",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Review SSH key writes for unauthorized access",
		CWE:         "CWE-506",
	},

	// Sensitive file access
	{
		ID:          "READ_SSH_PRIVATE_KEY",
		Name:        "Read SSH private key",
		Pattern:     `(cat|less|head|tail|vim|nano|open)\s+.*\.ssh/(id_rsa|id_dsa|id_ecdsa|id_ed25519)($|\s)`,
		Severity:    SeverityHigh,
		Category:    CategorySensitiveFileAccess,
		Weight:      70,
		Description: "reads an SSH private key file",
		Confidence:  ConfidenceHigh,
		Remediation: "Do not read private key files directly; use ssh-agent",
		CWE:         "CWE-522",
	},
	{
		ID:          "READ_AWS_CREDENTIALS",
		Name:        "Read AWS credentials",
		Pattern:     `(cat|less|head|tail|vim|nano|open)\s+.*\.aws/credentials`,
		Severity:    SeverityHigh,
		Category:    CategorySensitiveFileAccess,
		Weight:      70,
		Description: "reads the AWS credentials file",
		Confidence:  ConfidenceHigh,
		Remediation: "Use IAM roles or environment variables instead of reading credential files",
		CWE:         "CWE-522",
	},
	{
		ID:          "READ_ENV_FILE",
		Name:        "Read .env file",
		Pattern:     `(cat|less|head|tail|vim|nano|open)\s+.*\.env($|\s)`,
		Severity:    SeverityMedium,
		Category:    CategorySensitiveFileAccess,
		Weight:      50,
		Description: "reads an environment configuration file",
		Confidence:  ConfidenceMedium,
		Remediation: "Make sure .env files hold no secrets, or use a secret manager",
		CWE:         "CWE-522",
	},
	{
		ID:          "READ_PASSWD",
		Name:        "Read passwd file",
		Pattern:     `(cat|less|head|tail)\s+/etc/passwd`,
		Severity:    SeverityMedium,
		Category:    CategorySensitiveFileAccess,
		Weight:      45,
		Description: "reads system user information",
		Confidence:  ConfidenceHigh,
		Remediation: "Confirm user information is actually needed",
		CWE:         "CWE-200",
	},
	{
		ID:          "READ_SHADOW",
		Name:        "Read shadow file",
		Pattern:     `(cat|less|head|tail)\s+/etc/shadow`,
		Severity:    SeverityCritical,
		Category:    CategorySensitiveFileAccess,
		Weight:      85,
		Description: "reads the system password hash file",
		HardTrigger: true,
		Confidence:  ConfidenceHigh,
		Remediation: "Never read the shadow file",
		CWE:         "CWE-522",
	},
	{
		ID:          "READ_GIT_CREDENTIALS",
		Name:        "Read Git credentials",
		Pattern:     `(cat|less|head|tail|vim|nano|open)\s+.*\.git-credentials`,
		Severity:    SeverityHigh,
		Category:    CategorySensitiveFileAccess,
		Weight:      65,
		Description: "reads the Git credential store",
		Confidence:  ConfidenceHigh,
		Remediation: "Use SSH keys or a credential manager instead of plaintext Git credentials",
		CWE:         "CWE-522",
	},
}
