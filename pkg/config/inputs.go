package config

// Pipeline input names. The agent exposes each as an INPUT_<NAME>
// environment variable; an inputs file may set them by these exact
// keys.
const (
	// InputHelper selects the operation to run
	InputHelper = "helper"

	// setCookbookVersion inputs
	InputCookbookVersionNumber = "cookbookVersionNumber"
	InputCookbookMetadataPath  = "cookbookMetadataPath"
	InputCookbookVersionRegex  = "cookbookVersionRegex"

	// setupHabitat inputs
	InputHabitatOrigin           = "habitatOrigin"
	InputHabitatOriginRevision   = "habitatOriginRevision"
	InputHabitatOriginPublicKey  = "habitatOriginPublicKey"
	InputHabitatOriginSigningKey = "habitatOriginSigningKey"

	// setupChef inputs
	InputChefServerURL = "chefServerUrl"
	InputChefUsername  = "chefUsername"
	InputChefPassword  = "chefPassword"
	InputChefSSLVerify = "chefSslVerify"

	// envCookbookVersion inputs
	InputChefEnvironmentName = "chefEnvironmentName"
	InputChefCookbookName    = "chefCookbookName"
	InputChefCookbookVersion = "chefCookbookVersion"
)

// inputNames lists every known input for env var name canonicalization.
var inputNames = []string{
	InputHelper,
	InputCookbookVersionNumber,
	InputCookbookMetadataPath,
	InputCookbookVersionRegex,
	InputHabitatOrigin,
	InputHabitatOriginRevision,
	InputHabitatOriginPublicKey,
	InputHabitatOriginSigningKey,
	InputChefServerURL,
	InputChefUsername,
	InputChefPassword,
	InputChefSSLVerify,
	InputChefEnvironmentName,
	InputChefCookbookName,
	InputChefCookbookVersion,
}
