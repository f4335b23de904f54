package deb

// ControlField represents a standard field in a Debian control paragraph.
type ControlField string

const (
	FieldPackage       ControlField = "Package"
	FieldVersion       ControlField = "Version"
	FieldArchitecture  ControlField = "Architecture"
	FieldMaintainer    ControlField = "Maintainer"
	FieldDescription   ControlField = "Description"
	FieldSection       ControlField = "Section"
	FieldPriority      ControlField = "Priority"
	FieldHomepage      ControlField = "Homepage"
	FieldEssential     ControlField = "Essential"
	FieldDepends       ControlField = "Depends"
	FieldPreDepends    ControlField = "Pre-Depends"
	FieldRecommends    ControlField = "Recommends"
	FieldSuggests      ControlField = "Suggests"
	FieldEnhances      ControlField = "Enhances"
	FieldConflicts     ControlField = "Conflicts"
	FieldBreaks        ControlField = "Breaks"
	FieldReplaces      ControlField = "Replaces"
	FieldProvides      ControlField = "Provides"
	FieldBuiltUsing    ControlField = "Built-Using"
	FieldSource        ControlField = "Source"
	FieldInstalledSize ControlField = "Installed-Size"

	// Packages index fields.
	FieldFilename ControlField = "Filename"
	FieldSize     ControlField = "Size"
	FieldMD5sum   ControlField = "MD5sum"
	FieldSHA1     ControlField = "SHA1"
	FieldSHA256   ControlField = "SHA256"
	FieldSHA512   ControlField = "SHA512"

	// Sources index fields.
	FieldBinary          ControlField = "Binary"
	FieldDirectory       ControlField = "Directory"
	FieldFiles           ControlField = "Files"
	FieldChecksumsSha256 ControlField = "Checksums-Sha256"

	// dpkg status fields.
	FieldStatus    ControlField = "Status"
	FieldConffiles ControlField = "Conffiles"
)

// ControlFile represents a standard file found in the control.tar archive.
type ControlFile string

const (
	FileControl   ControlFile = "control"
	FileMd5sums   ControlFile = "md5sums"
	FileConffiles ControlFile = "conffiles"
)

// PackageFile represents a standard member of the .deb archive (ar format).
type PackageFile string

const (
	PkgDebianBinary PackageFile = "debian-binary"
	PkgControlTar   PackageFile = "control.tar"
	PkgControlTarGz PackageFile = "control.tar.gz"
	PkgControlTarXz PackageFile = "control.tar.xz"
)

// ReleaseField represents a standard field in a Debian Release file.
type ReleaseField string

const (
	RelOrigin               ReleaseField = "Origin"
	RelLabel                ReleaseField = "Label"
	RelSuite                ReleaseField = "Suite"
	RelVersion              ReleaseField = "Version"
	RelCodename             ReleaseField = "Codename"
	RelDate                 ReleaseField = "Date"
	RelValidUntil           ReleaseField = "Valid-Until"
	RelArchitectures        ReleaseField = "Architectures"
	RelComponents           ReleaseField = "Components"
	RelDescription          ReleaseField = "Description"
	RelNotAutomatic         ReleaseField = "NotAutomatic"
	RelButAutomaticUpgrades ReleaseField = "ButAutomaticUpgrades"
	RelAcquireByHash        ReleaseField = "Acquire-By-Hash"
	RelMD5Sum               ReleaseField = "MD5Sum"
	RelSHA1                 ReleaseField = "SHA1"
	RelSHA256               ReleaseField = "SHA256"
	RelSHA512               ReleaseField = "SHA512"
)

// HashKind names a checksum algorithm as apt spells it in Release files.
type HashKind string

const (
	HashMD5    HashKind = "MD5Sum"
	HashSHA1   HashKind = "SHA1"
	HashSHA256 HashKind = "SHA256"
	HashSHA512 HashKind = "SHA512"
)
