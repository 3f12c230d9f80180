package renderer

// Sources is a vertex/fragment source pair compiled into the background program.
type Sources struct {
	Vertex   string
	Fragment string
}

// DefaultSources returns the built-in liquid/plasma shaders.
func DefaultSources() Sources {
	return Sources{Vertex: vertexSource, Fragment: fragmentSource}
}

// Names the render step resolves after linking.
const (
	attribPosition    = "vertexPosition"
	uniformResolution = "resolution"
	uniformTime       = "time"
	uniformMouse      = "mouse"
)

const vertexSource = `#version 330 core
in vec4 vertexPosition;
void main() {
    gl_Position = vertexPosition;
}
`

// fragmentSource is mirrored on the CPU by internal/pattern; keep the two in step.
const fragmentSource = `#version 330 core
precision highp float;

uniform vec2 resolution;
uniform float time;
uniform vec2 mouse;

out vec4 fragColor;

void main() {
    vec2 uv = gl_FragCoord.xy / resolution.xy;
    uv = uv * 2.0 - 1.0;
    uv.x *= resolution.x / resolution.y;

    float t = time * 0.2;

    vec2 m = mouse * 2.0 - 1.0;
    m.x *= resolution.x / resolution.y;
    float dist = length(uv - m);

    vec2 p = uv;
    float a = 0.5;
    float f = 1.0;
    for (int i = 0; i < 3; i++) {
        p.x += sin(p.y * f + t) * a;
        p.y += cos(p.x * f + t) * a;
        a *= 0.5;
        f *= 2.0;
    }

    // scalar offset, applied to both axes
    p += 0.1 / (dist + 0.2) * sin(t);

    float val = sin(p.x * 3.0 + t);

    vec3 col = vec3(0.05, 0.05, 0.07);
    vec3 blue = vec3(0.2, 0.3, 0.5);
    vec3 purple = vec3(0.3, 0.2, 0.4);
    vec3 grey = vec3(0.4, 0.45, 0.5);

    vec3 grad = mix(blue, purple, p.y + 0.5);
    float v = smoothstep(0.0, 1.0, val * 0.5 + 0.5);
    col = mix(col, grad, v * 0.6);
    col += grey * 0.1 * sin(p.y * 10.0 + t);

    float vign = 1.0 - length(uv * 0.6);
    col *= smoothstep(0.0, 1.2, vign);

    fragColor = vec4(col, 1.0);
}
`
