package shader

import "github.com/Faultbox/snowfight/internal/engine/render"

// Vertex attribute and uniform names shared by every program.
const (
	AttrPosition = "aVertexPosition"
	AttrColor    = "aVertexColor"
	AttrNormal   = "aVertexNormal"
	AttrTexCoord = "aTextureCoord"

	UniformSampler   = "uSampler"
	UniformAmbient   = "uniform_ambientLightVector"
	UniformViewing   = "uniform_viewingVector"
	UniformTransform = "uniform_transformationMatrix"
)

const vertexTransformed = `#version 410 core

in vec3 aVertexPosition;
in vec4 aVertexColor;
in vec3 aVertexNormal;
in vec2 aTextureCoord;

uniform mat4 uniform_transformationMatrix;
uniform vec3 uniform_ambientLightVector;

out vec4 vColor;
out vec3 vNormal;
out vec2 vTexCoord;
out float vDiffuse;

void main() {
	gl_Position = uniform_transformationMatrix * vec4(aVertexPosition, 1.0);
	vNormal = normalize(mat3(uniform_transformationMatrix) * aVertexNormal);
	vDiffuse = max(dot(vNormal, -normalize(uniform_ambientLightVector)), 0.0);
	vColor = aVertexColor;
	vTexCoord = aTextureCoord;
}
`

const vertexUntransformed = `#version 410 core

in vec3 aVertexPosition;
in vec2 aTextureCoord;

out vec2 vTexCoord;

void main() {
	gl_Position = vec4(aVertexPosition, 1.0);
	vTexCoord = aTextureCoord;
}
`

// Rough snow: diffuse lighting modulated by a cell hash over the surface UVs.
const fragmentSnowRough = `#version 410 core

in vec4 vColor;
in vec3 vNormal;
in vec2 vTexCoord;
in float vDiffuse;

out vec4 fragColor;

float hash(vec2 p) {
	return fract(sin(dot(p, vec2(12.9898, 78.233))) * 43758.5453);
}

void main() {
	vec2 cell = floor(vTexCoord * vec2(96.0, 48.0));
	float grain = mix(0.85, 1.0, hash(cell));
	float light = 0.45 + 0.55 * vDiffuse;
	fragColor = vec4(vColor.rgb * light * grain, vColor.a);
}
`

const fragmentGouraud = `#version 410 core

in vec4 vColor;
in vec3 vNormal;
in vec2 vTexCoord;
in float vDiffuse;

out vec4 fragColor;

void main() {
	fragColor = vec4(vColor.rgb * (0.35 + 0.65 * vDiffuse), vColor.a);
}
`

const phongLighting = `
uniform vec3 uniform_ambientLightVector;
uniform vec3 uniform_viewingVector;

vec3 phong(vec3 base, vec3 normal) {
	vec3 n = normalize(normal);
	vec3 l = -normalize(uniform_ambientLightVector);
	vec3 v = -normalize(uniform_viewingVector);
	float diffuse = max(dot(n, l), 0.0);
	float specular = pow(max(dot(reflect(-l, n), v), 0.0), 16.0);
	return base * (0.3 + 0.7 * diffuse) + vec3(0.6) * specular;
}
`

const fragmentPhong = `#version 410 core

in vec4 vColor;
in vec3 vNormal;
in vec2 vTexCoord;
in float vDiffuse;

out vec4 fragColor;
` + phongLighting + `
void main() {
	fragColor = vec4(phong(vColor.rgb, vNormal), vColor.a);
}
`

const fragmentPhongRedTint = `#version 410 core

in vec4 vColor;
in vec3 vNormal;
in vec2 vTexCoord;
in float vDiffuse;

out vec4 fragColor;
` + phongLighting + `
void main() {
	vec3 tinted = mix(vColor.rgb, vec3(0.9, 0.05, 0.05), 0.8);
	fragColor = vec4(phong(tinted, vNormal), vColor.a);
}
`

const fragmentOverlay = `#version 410 core

in vec2 vTexCoord;

uniform sampler2D uSampler;

out vec4 fragColor;

void main() {
	fragColor = texture(uSampler, vTexCoord);
}
`

// Night sky gradient, darker toward the top of the screen.
const fragmentBackdrop = `#version 410 core

in vec2 vTexCoord;

out vec4 fragColor;

void main() {
	vec3 top = vec3(0.02, 0.03, 0.12);
	vec3 horizon = vec3(0.25, 0.3, 0.55);
	fragColor = vec4(mix(top, horizon, vTexCoord.y), 1.0);
}
`

// Sources returns the vertex and fragment source for a program. Unknown
// programs return empty strings.
func Sources(p render.Program) (vertex, fragment string) {
	switch p {
	case render.SnowRough:
		return vertexTransformed, fragmentSnowRough
	case render.Gouraud:
		return vertexTransformed, fragmentGouraud
	case render.Phong:
		return vertexTransformed, fragmentPhong
	case render.PhongRedTint:
		return vertexTransformed, fragmentPhongRedTint
	case render.Overlay:
		return vertexUntransformed, fragmentOverlay
	case render.Backdrop:
		return vertexUntransformed, fragmentBackdrop
	default:
		return "", ""
	}
}
