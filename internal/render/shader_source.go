package render

// GLSL for the scene shader program. The uniform names form the contract in
// uniforms.go; the lighting model is the classic Phong split across one
// directional light, a fixed point-light array and one spot light.

const sceneVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 model;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragTexCoord;

void main()
{
    vec4 world = model * vec4(vertexPosition, 1.0);
    fragPos = world.xyz;
    fragNormal = mat3(transpose(inverse(model))) * vertexNormal;
    fragTexCoord = vertexTexCoord;
    gl_Position = mvp * world;
}
`

const sceneFragmentShader = `
#version 330

in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragTexCoord;

out vec4 finalColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;

struct Material {
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};
uniform Material material;

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};
uniform DirectionalLight directionalLight;

#define NR_POINT_LIGHTS 5
struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};
uniform PointLight pointLights[NR_POINT_LIGHTS];

struct SpotLight {
    vec3 position;
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    float constant;
    float linear;
    float quadratic;
    float cutOff;
    float outerCutOff;
    bool bActive;
};
uniform SpotLight spotLight;

vec3 phong(vec3 lightDir, vec3 ambient, vec3 diffuse, vec3 specular,
           vec3 norm, vec3 viewDir, vec3 base)
{
    float diff = max(dot(norm, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));

    vec3 a = ambient * base;
    vec3 d = diffuse * diff * base * material.diffuseColor;
    vec3 s = specular * spec * material.specularColor;
    return a + d + s;
}

void main()
{
    vec4 baseColor = bUseTexture
        ? texture(objectTexture, fragTexCoord * UVscale)
        : objectColor;

    if (!bUseLighting) {
        finalColor = baseColor;
        return;
    }

    vec3 norm = normalize(fragNormal);
    vec3 viewDir = normalize(viewPosition - fragPos);
    vec3 result = vec3(0.0);

    if (directionalLight.bActive) {
        result += phong(normalize(-directionalLight.direction),
                        directionalLight.ambient, directionalLight.diffuse,
                        directionalLight.specular, norm, viewDir, baseColor.rgb);
    }

    for (int i = 0; i < NR_POINT_LIGHTS; i++) {
        if (!pointLights[i].bActive) {
            continue;
        }
        vec3 lightDir = normalize(pointLights[i].position - fragPos);
        result += phong(lightDir, pointLights[i].ambient, pointLights[i].diffuse,
                        pointLights[i].specular, norm, viewDir, baseColor.rgb);
    }

    if (spotLight.bActive) {
        vec3 lightDir = normalize(spotLight.position - fragPos);
        float theta = dot(lightDir, normalize(-spotLight.direction));
        float epsilon = spotLight.cutOff - spotLight.outerCutOff;
        float intensity = clamp((theta - spotLight.outerCutOff) / epsilon, 0.0, 1.0);

        float dist = length(spotLight.position - fragPos);
        float attenuation = 1.0 / (spotLight.constant + spotLight.linear * dist +
                                   spotLight.quadratic * dist * dist);

        result += phong(lightDir, spotLight.ambient, spotLight.diffuse,
                        spotLight.specular, norm, viewDir, baseColor.rgb) *
                  intensity * attenuation;
    }

    finalColor = vec4(result, baseColor.a);
}
`
