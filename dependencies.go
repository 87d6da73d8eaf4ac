package appliance

// Packages installed with apt-get after the interpreter specific ones.
var basePackages = []string{
	"python3-pip",
	"libcurl4-openssl-dev",
	"libssl-dev",
	"wget",
	"curl",
	"openssh-server",
	"nodejs", // CWL javascript expressions
	"rsync",
	"screen",
	"build-essential", // needed to build Singularity 3
	"libarchive13",
	"libc6",
	"libseccomp2",
	"e2fsprogs",
	"uuid-dev",
	"libgpgme11-dev",
	"libseccomp-dev",
	"pkg-config",
	"squashfs-tools",
	"cryptsetup",
	"less",
	"vim",
	"git",
}

// distutilsPackages maps the interpreters that need distutils installed
// separately to the package providing it.
// Other versions get nothing, even newer ones.
var distutilsPackages = map[Interpreter]string{
	{Major: 3, Minor: 8}: "python3.8-distutils",
	{Major: 3, Minor: 9}: "python3.9-distutils",
}

// Dependencies returns the apt packages to install for the interpreter, in
// install order.
func Dependencies(py Interpreter) []string {
	deps := make([]string, 0, len(basePackages)+4)
	deps = append(deps,
		"libffi-dev", // client side encryption for extras with PyNaCl
		py.Name(),
		py.Name()+"-dev",
	)

	if pkg, ok := distutilsPackages[py]; ok {
		deps = append(deps, pkg)
	}

	return append(deps, basePackages...)
}
